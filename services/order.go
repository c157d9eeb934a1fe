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

var orderSortColumns = map[string]string{
	"date":      "date",
	"price":     "price",
	"quantity":  "quantity",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type OrderService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrderService(db *gorm.DB, log *zap.Logger) *OrderService {
	return &OrderService{db: db, log: log}
}

// OrderListQuery extends the shared list parameters with the order
// filters: owning customer, a specific date, or a date range.
type OrderListQuery struct {
	ListQuery
	CustomerID string
	Date       string
	DateFrom   string
	DateTo     string
}

// orderFilter is built from already-validated values only.
type orderFilter struct {
	customerID string
	on         *time.Time
	from       *time.Time
	to         *time.Time
}

func (f orderFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.customerID != "" {
		tx = tx.Where("customer_id = ?", f.customerID)
	}
	if f.on != nil {
		tx = tx.Where("date >= ? AND date < ?", *f.on, f.on.Add(24*time.Hour))
	}
	if f.from != nil {
		tx = tx.Where("date >= ?", *f.from)
	}
	if f.to != nil {
		tx = tx.Where("date < ?", f.to.Add(24*time.Hour))
	}
	return tx
}

// Create records a delivery order. Item, price and quantity fall back to
// the owning customer's defaults when omitted.
func (s *OrderService) Create(ctx context.Context, in validation.CreateOrderInput) envelope.Result {
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
		return envelope.ServerError("Failed to create order", err)
	}

	date, _ := validation.Date(in.Date)

	order := models.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Date:       date,
		Item:       customer.DefaultItem,
		Price:      customer.DefaultPrice,
		Quantity:   customer.DefaultQuantity,
	}
	if in.Item != "" {
		order.Item = models.ItemType(in.Item)
	}
	if in.Price != nil {
		order.Price = *in.Price
	}
	if in.Quantity != nil {
		order.Quantity = *in.Quantity
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		s.log.Error("order insert failed", zap.Error(err))
		return envelope.ServerError("Failed to create order", err)
	}
	return envelope.Created(map[string]interface{}{"order": order})
}

func (s *OrderService) List(ctx context.Context, q OrderListQuery) envelope.Result {
	filter, res, ok := s.buildFilter(q)
	if !ok {
		return res
	}

	page, limit, order := q.normalize(orderSortColumns)

	var total int64
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Order{})).
		Count(&total).Error; err != nil {
		s.log.Error("order count failed", zap.Error(err))
		return envelope.ServerError("Failed to list orders", err)
	}

	var orders []models.Order
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Order{})).
		Order(order).Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		s.log.Error("order list failed", zap.Error(err))
		return envelope.ServerError("Failed to list orders", err)
	}

	return envelope.OK(map[string]interface{}{
		"orders":     orders,
		"pagination": newPagination(page, limit, total),
	})
}

func (s *OrderService) buildFilter(q OrderListQuery) (orderFilter, envelope.Result, bool) {
	var f orderFilter
	if q.CustomerID != "" {
		if !validation.IsStoreID(q.CustomerID) {
			return f, envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "customerId", Message: "must be a valid identifier",
			}), false
		}
		f.customerID = q.CustomerID
	}
	for _, p := range []struct {
		raw   string
		field string
		dst   **time.Time
	}{
		{q.Date, "date", &f.on},
		{q.DateFrom, "dateFrom", &f.from},
		{q.DateTo, "dateTo", &f.to},
	} {
		if p.raw == "" {
			continue
		}
		t, err := validation.Date(p.raw)
		if err != nil {
			return f, envelope.Invalid("Validation failed", envelope.FieldError{
				Field: p.field, Message: "must be a date in YYYY-MM-DD format",
			}), false
		}
		*p.dst = &t
	}
	return f, envelope.Result{}, true
}

func (s *OrderService) Get(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	order, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	return envelope.OK(map[string]interface{}{"order": order})
}

func (s *OrderService) Update(ctx context.Context, id string, in validation.UpdateOrderInput) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	order, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	if errs := validation.Struct(in); errs != nil {
		return envelope.Invalid("Validation failed", errs...)
	}
	if in.Empty() {
		return envelope.OK(map[string]interface{}{"order": order})
	}

	updated := order
	if in.Date != nil {
		date, _ := validation.Date(*in.Date)
		updated.Date = date
	}
	if in.Item != nil {
		updated.Item = models.ItemType(*in.Item)
	}
	if in.Price != nil {
		updated.Price = *in.Price
	}
	if in.Quantity != nil {
		updated.Quantity = *in.Quantity
	}

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		s.log.Error("order update failed", zap.Error(err))
		return envelope.ServerError("Failed to update order", err)
	}
	return envelope.OK(map[string]interface{}{"order": updated})
}

func (s *OrderService) Delete(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	order, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	if err := s.db.WithContext(ctx).Delete(&order).Error; err != nil {
		s.log.Error("order delete failed", zap.Error(err))
		return envelope.ServerError("Failed to delete order", err)
	}
	return envelope.OK(map[string]interface{}{"message": "Order deleted successfully"})
}

func (s *OrderService) load(ctx context.Context, id string) (models.Order, envelope.Result, bool) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, envelope.NotFound("Order"), false
	}
	if err != nil {
		s.log.Error("order lookup failed", zap.Error(err))
		return order, envelope.ServerError("Failed to load order", err), false
	}
	return order, envelope.Result{}, true
}
