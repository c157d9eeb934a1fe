package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortalFixture(t *testing.T) (*PortalService, *CustomerService, *OrderService, *PaymentService, models.Customer, string) {
	t.Helper()
	db := newTestDB(t)
	customers := NewCustomerService(db, testLogger())
	customer, key := mustCreateCustomer(t, customers, "01712345678")
	return NewPortalService(db, testLogger()),
		customers,
		NewOrderService(db, testLogger()),
		NewPaymentService(db, testLogger()),
		customer, key
}

func TestPortal_UnknownAndExpiredKeysAreIndistinguishable(t *testing.T) {
	portal, _, _, _, customer, key := newPortalFixture(t)
	ctx := context.Background()

	// Never-issued key of the right shape
	unknown := strings.Repeat("ab", 32)
	missRes := portal.Overview(ctx, PortalQuery{Key: unknown})
	require.Equal(t, envelope.KindInvalid, missRes.Kind)

	// Expire the real key, then present it
	db := portal.db
	require.NoError(t, db.Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Update("access_key_expiry", time.Now().Add(-time.Hour)).Error)
	expiredRes := portal.Overview(ctx, PortalQuery{Key: key})
	require.Equal(t, envelope.KindInvalid, expiredRes.Kind)

	// Same message, same shape: nothing leaks which case it was
	assert.Equal(t, missRes.Message, expiredRes.Message)
	assert.Equal(t, missRes.HTTPStatus(), expiredRes.HTTPStatus())
	assert.Empty(t, missRes.Errors)
	assert.Empty(t, expiredRes.Errors)
}

func TestPortal_WrongLengthKeyRejectedWithoutLookup(t *testing.T) {
	portal, _, _, _, _, _ := newPortalFixture(t)

	res := portal.Overview(context.Background(), PortalQuery{Key: "short"})

	assert.Equal(t, envelope.KindInvalid, res.Kind)
	assert.Equal(t, msgInvalidKey, res.Message)
}

func TestPortal_Overview(t *testing.T) {
	portal, customers, orders, payments, customer, key := newPortalFixture(t)
	ctx := context.Background()

	// A second customer's records must never show up in the view
	other, _ := mustCreateCustomer(t, customers, "01712345679")
	res := orders.Create(ctx, validation.CreateOrderInput{CustomerID: other.ID, Date: "2026-08-10"})
	require.Equal(t, envelope.KindCreated, res.Kind)

	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		res := orders.Create(ctx, validation.CreateOrderInput{CustomerID: customer.ID, Date: date})
		require.Equal(t, envelope.KindCreated, res.Kind)
	}
	for _, date := range []string{"2026-08-05", "2026-09-05"} {
		res := payments.Create(ctx, validation.CreatePaymentInput{
			CustomerID: customer.ID, Amount: 1500, Date: date,
		})
		require.Equal(t, envelope.KindCreated, res.Kind)
	}

	out := portal.Overview(ctx, PortalQuery{
		Key:    key,
		Orders: ListQuery{Page: 1, Limit: 2},
	})
	require.Equal(t, envelope.KindOK, out.Kind, out.Message)

	owner := out.Data["customer"].(models.Customer)
	assert.Equal(t, customer.ID, owner.ID)

	ordersBlock := out.Data["orders"].(map[string]interface{})
	orderMeta := ordersBlock["pagination"].(Pagination)
	assert.Equal(t, int64(3), orderMeta.TotalRecords)
	assert.Equal(t, int64(2), orderMeta.TotalPages)
	assert.Len(t, ordersBlock["records"].([]models.Order), 2)

	// Payment pages come from the payment count, independent of orders
	paymentsBlock := out.Data["payments"].(map[string]interface{})
	payMeta := paymentsBlock["pagination"].(Pagination)
	assert.Equal(t, int64(2), payMeta.TotalRecords)
	assert.Equal(t, int64(1), payMeta.TotalPages)
}

func TestPortal_SharedDateRange(t *testing.T) {
	portal, _, orders, payments, customer, key := newPortalFixture(t)
	ctx := context.Background()

	for _, date := range []string{"2026-08-01", "2026-09-01"} {
		res := orders.Create(ctx, validation.CreateOrderInput{CustomerID: customer.ID, Date: date})
		require.Equal(t, envelope.KindCreated, res.Kind)
		pres := payments.Create(ctx, validation.CreatePaymentInput{
			CustomerID: customer.ID, Amount: 100, Date: date,
		})
		require.Equal(t, envelope.KindCreated, pres.Kind)
	}

	out := portal.Overview(ctx, PortalQuery{
		Key:      key,
		DateFrom: "2026-08-01",
		DateTo:   "2026-08-31",
	})
	require.Equal(t, envelope.KindOK, out.Kind)

	ordersBlock := out.Data["orders"].(map[string]interface{})
	assert.Equal(t, int64(1), ordersBlock["pagination"].(Pagination).TotalRecords)
	paymentsBlock := out.Data["payments"].(map[string]interface{})
	assert.Equal(t, int64(1), paymentsBlock["pagination"].(Pagination).TotalRecords)

	bad := portal.Overview(ctx, PortalQuery{Key: key, DateFrom: "bogus"})
	assert.Equal(t, envelope.KindInvalid, bad.Kind)
	assert.Contains(t, fieldErrors(bad), "dateFrom")
}

func TestPortal_RegeneratedKeyInvalidatesOld(t *testing.T) {
	portal, customers, _, _, customer, oldKey := newPortalFixture(t)
	ctx := context.Background()

	require.Equal(t, envelope.KindOK, portal.Overview(ctx, PortalQuery{Key: oldKey}).Kind)

	regen := customers.RegenerateAccessKey(ctx, customer.ID)
	require.Equal(t, envelope.KindOK, regen.Kind)
	newKey := regen.Data["accessKey"].(string)

	old := portal.Overview(ctx, PortalQuery{Key: oldKey})
	assert.Equal(t, envelope.KindInvalid, old.Kind)
	assert.Equal(t, msgInvalidKey, old.Message)

	assert.Equal(t, envelope.KindOK, portal.Overview(ctx, PortalQuery{Key: newKey}).Kind)
}
