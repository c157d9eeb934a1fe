package services

import (
	"context"
	"testing"

	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentFixture(t *testing.T) (*PaymentService, models.Customer) {
	t.Helper()
	db := newTestDB(t)
	customers := NewCustomerService(db, testLogger())
	customer, _ := mustCreateCustomer(t, customers, "01712345678")
	return NewPaymentService(db, testLogger()), customer
}

func TestCreatePayment(t *testing.T) {
	svc, customer := newPaymentFixture(t)

	res := svc.Create(context.Background(), validation.CreatePaymentInput{
		CustomerID: customer.ID,
		Amount:     1800,
		Date:       "2026-09-01",
		Note:       "August bill",
	})

	require.Equal(t, envelope.KindCreated, res.Kind, res.Message)
	payment := res.Data["payment"].(models.Payment)
	assert.Equal(t, customer.ID, payment.CustomerID)
	assert.Equal(t, 1800.0, payment.Amount)
}

func TestCreatePayment_Invalid(t *testing.T) {
	svc, customer := newPaymentFixture(t)
	ctx := context.Background()

	res := svc.Create(ctx, validation.CreatePaymentInput{
		CustomerID: customer.ID, Amount: -5, Date: "2026-09-01",
	})
	assert.Equal(t, envelope.KindInvalid, res.Kind)
	assert.Contains(t, fieldErrors(res), "amount")

	res = svc.Create(ctx, validation.CreatePaymentInput{
		CustomerID: uuid.NewString(), Amount: 100, Date: "2026-09-01",
	})
	assert.Equal(t, envelope.KindInvalid, res.Kind)
	assert.Equal(t, "Customer not found", res.Message)
}

func TestListPayments_DateRange(t *testing.T) {
	svc, customer := newPaymentFixture(t)
	ctx := context.Background()

	for _, date := range []string{"2026-07-01", "2026-08-01", "2026-09-01"} {
		res := svc.Create(ctx, validation.CreatePaymentInput{
			CustomerID: customer.ID, Amount: 1500, Date: date,
		})
		require.Equal(t, envelope.KindCreated, res.Kind)
	}

	res := svc.List(ctx, PaymentListQuery{
		CustomerID: customer.ID,
		DateFrom:   "2026-08-01",
		DateTo:     "2026-08-31",
	})
	require.Equal(t, envelope.KindOK, res.Kind)
	assert.Equal(t, int64(1), res.Data["pagination"].(Pagination).TotalRecords)

	res = svc.List(ctx, PaymentListQuery{CustomerID: customer.ID})
	require.Equal(t, envelope.KindOK, res.Kind)
	assert.Equal(t, int64(3), res.Data["pagination"].(Pagination).TotalRecords)
}

func TestDeletePayment_Lifecycle(t *testing.T) {
	svc, customer := newPaymentFixture(t)
	ctx := context.Background()

	res := svc.Delete(ctx, uuid.NewString())
	assert.Equal(t, envelope.KindInvalid, res.Kind)
	assert.Equal(t, "Payment not found", res.Message)

	created := svc.Create(ctx, validation.CreatePaymentInput{
		CustomerID: customer.ID, Amount: 500, Date: "2026-09-01",
	})
	require.Equal(t, envelope.KindCreated, created.Kind)
	payment := created.Data["payment"].(models.Payment)

	require.Equal(t, envelope.KindOK, svc.Delete(ctx, payment.ID).Kind)
	assert.Equal(t, envelope.KindInvalid, svc.Get(ctx, payment.ID).Kind)
}
