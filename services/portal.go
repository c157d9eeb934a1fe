package services

import (
	"context"
	"errors"
	"time"

	"daily-delivery-api/accesskey"
	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// msgInvalidKey is deliberately the same for an unknown key and an
// expired one, so the response leaks neither.
const msgInvalidKey = "Invalid or expired access key"

// PortalService serves the customer self-service view: the owner record
// plus independently paginated orders and payments, gated by the access
// key alone.
type PortalService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPortalService(db *gorm.DB, log *zap.Logger) *PortalService {
	return &PortalService{db: db, log: log}
}

// PortalQuery carries the key, one pagination/sort block per
// sub-collection, and an optional date range shared by both.
type PortalQuery struct {
	Key      string
	Orders   ListQuery
	Payments ListQuery
	DateFrom string
	DateTo   string
}

func (s *PortalService) Overview(ctx context.Context, q PortalQuery) envelope.Result {
	if len(q.Key) != accesskey.Length {
		return envelope.Invalid(msgInvalidKey)
	}

	var customer models.Customer
	err := s.db.WithContext(ctx).
		Where("access_key_hash = ? AND access_key_expiry > ?", accesskey.Digest(q.Key), time.Now()).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return envelope.Invalid(msgInvalidKey)
	}
	if err != nil {
		s.log.Error("access key lookup failed", zap.Error(err))
		return envelope.ServerError("Failed to load overview", err)
	}

	var from, to *time.Time
	if q.DateFrom != "" {
		t, err := validation.Date(q.DateFrom)
		if err != nil {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "dateFrom", Message: "must be a date in YYYY-MM-DD format",
			})
		}
		from = &t
	}
	if q.DateTo != "" {
		t, err := validation.Date(q.DateTo)
		if err != nil {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "dateTo", Message: "must be a date in YYYY-MM-DD format",
			})
		}
		to = &t
	}

	ordersBlock, res, ok := s.ordersPage(ctx, customer.ID, q.Orders, from, to)
	if !ok {
		return res
	}
	paymentsBlock, res, ok := s.paymentsPage(ctx, customer.ID, q.Payments, from, to)
	if !ok {
		return res
	}

	return envelope.OK(map[string]interface{}{
		"customer": customer,
		"orders":   ordersBlock,
		"payments": paymentsBlock,
	})
}

func (s *PortalService) ordersPage(ctx context.Context, customerID string, q ListQuery, from, to *time.Time) (map[string]interface{}, envelope.Result, bool) {
	filter := orderFilter{customerID: customerID, from: from, to: to}
	page, limit, order := q.normalize(orderSortColumns)

	var total int64
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Order{})).
		Count(&total).Error; err != nil {
		s.log.Error("portal order count failed", zap.Error(err))
		return nil, envelope.ServerError("Failed to load overview", err), false
	}

	var orders []models.Order
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Order{})).
		Order(order).Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		s.log.Error("portal order list failed", zap.Error(err))
		return nil, envelope.ServerError("Failed to load overview", err), false
	}

	return map[string]interface{}{
		"records":    orders,
		"pagination": newPagination(page, limit, total),
	}, envelope.Result{}, true
}

func (s *PortalService) paymentsPage(ctx context.Context, customerID string, q ListQuery, from, to *time.Time) (map[string]interface{}, envelope.Result, bool) {
	filter := paymentFilter{customerID: customerID, from: from, to: to}
	page, limit, order := q.normalize(paymentSortColumns)

	// Page count comes from the payment total, not the order total; the
	// two sub-collections never share pagination state.
	var total int64
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Payment{})).
		Count(&total).Error; err != nil {
		s.log.Error("portal payment count failed", zap.Error(err))
		return nil, envelope.ServerError("Failed to load overview", err), false
	}

	var payments []models.Payment
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Payment{})).
		Order(order).Offset((page - 1) * limit).Limit(limit).
		Find(&payments).Error; err != nil {
		s.log.Error("portal payment list failed", zap.Error(err))
		return nil, envelope.ServerError("Failed to load overview", err), false
	}

	return map[string]interface{}{
		"records":    payments,
		"pagination": newPagination(page, limit, total),
	}, envelope.Result{}, true
}
