package services

import (
	"context"
	"errors"
	"time"

	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var paymentSortColumns = map[string]string{
	"amount":    "amount",
	"date":      "date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type PaymentService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPaymentService(db *gorm.DB, log *zap.Logger) *PaymentService {
	return &PaymentService{db: db, log: log}
}

type PaymentListQuery struct {
	ListQuery
	CustomerID string
	DateFrom   string
	DateTo     string
}

type paymentFilter struct {
	customerID string
	from       *time.Time
	to         *time.Time
}

func (f paymentFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.customerID != "" {
		tx = tx.Where("customer_id = ?", f.customerID)
	}
	if f.from != nil {
		tx = tx.Where("date >= ?", *f.from)
	}
	if f.to != nil {
		tx = tx.Where("date < ?", f.to.Add(24*time.Hour))
	}
	return tx
}

func (s *PaymentService) Create(ctx context.Context, in validation.CreatePaymentInput) envelope.Result {
	if errs := validation.Struct(in); errs != nil {
		return envelope.Invalid("Validation failed", errs...)
	}
	if !validation.IsStoreID(in.CustomerID) {
		return envelope.Invalid("Validation failed", envelope.FieldError{
			Field: "customerId", Message: "must be a valid identifier",
		})
	}

	var customer models.Customer
	err := s.db.WithContext(ctx).First(&customer, "id = ?", in.CustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return envelope.NotFound("Customer")
	}
	if err != nil {
		s.log.Error("customer lookup failed", zap.Error(err))
		return envelope.ServerError("Failed to record payment", err)
	}

	date, _ := validation.Date(in.Date)
	payment := models.Payment{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Amount:     in.Amount,
		Date:       date,
		Note:       in.Note,
	}

	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		s.log.Error("payment insert failed", zap.Error(err))
		return envelope.ServerError("Failed to record payment", err)
	}
	return envelope.Created(map[string]interface{}{"payment": payment})
}

func (s *PaymentService) List(ctx context.Context, q PaymentListQuery) envelope.Result {
	var f paymentFilter
	if q.CustomerID != "" {
		if !validation.IsStoreID(q.CustomerID) {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "customerId", Message: "must be a valid identifier",
			})
		}
		f.customerID = q.CustomerID
	}
	if q.DateFrom != "" {
		t, err := validation.Date(q.DateFrom)
		if err != nil {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "dateFrom", Message: "must be a date in YYYY-MM-DD format",
			})
		}
		f.from = &t
	}
	if q.DateTo != "" {
		t, err := validation.Date(q.DateTo)
		if err != nil {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "dateTo", Message: "must be a date in YYYY-MM-DD format",
			})
		}
		f.to = &t
	}

	page, limit, order := q.normalize(paymentSortColumns)

	var total int64
	if err := f.apply(s.db.WithContext(ctx).Model(&models.Payment{})).
		Count(&total).Error; err != nil {
		s.log.Error("payment count failed", zap.Error(err))
		return envelope.ServerError("Failed to list payments", err)
	}

	var payments []models.Payment
	if err := f.apply(s.db.WithContext(ctx).Model(&models.Payment{})).
		Order(order).Offset((page - 1) * limit).Limit(limit).
		Find(&payments).Error; err != nil {
		s.log.Error("payment list failed", zap.Error(err))
		return envelope.ServerError("Failed to list payments", err)
	}

	return envelope.OK(map[string]interface{}{
		"payments":   payments,
		"pagination": newPagination(page, limit, total),
	})
}

func (s *PaymentService) Get(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	var payment models.Payment
	err := s.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return envelope.NotFound("Payment")
	}
	if err != nil {
		s.log.Error("payment lookup failed", zap.Error(err))
		return envelope.ServerError("Failed to load payment", err)
	}
	return envelope.OK(map[string]interface{}{"payment": payment})
}

func (s *PaymentService) Delete(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	var payment models.Payment
	err := s.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return envelope.NotFound("Payment")
	}
	if err != nil {
		s.log.Error("payment lookup failed", zap.Error(err))
		return envelope.ServerError("Failed to delete payment", err)
	}
	if err := s.db.WithContext(ctx).Delete(&payment).Error; err != nil {
		s.log.Error("payment delete failed", zap.Error(err))
		return envelope.ServerError("Failed to delete payment", err)
	}
	return envelope.OK(map[string]interface{}{"message": "Payment deleted successfully"})
}
