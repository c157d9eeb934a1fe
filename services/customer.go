package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"daily-delivery-api/accesskey"
	"daily-delivery-api/config"
	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// customerSortColumns whitelists sortBy values for customer listings.
var customerSortColumns = map[string]string{
	"name":      "name",
	"phone":     "phone",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type CustomerService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCustomerService(db *gorm.DB, log *zap.Logger) *CustomerService {
	return &CustomerService{db: db, log: log}
}

// CustomerListQuery extends the shared list parameters with the
// customer-specific search and active filters.
type CustomerListQuery struct {
	ListQuery
	Search string
	Active string // "", "true" or "false"
}

// customerFilter is the typed filter applied to both the page query and
// the total-count query.
type customerFilter struct {
	search string
	active *bool
}

func (f customerFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.search != "" {
		like := "%" + strings.ToLower(f.search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}
	if f.active != nil {
		tx = tx.Where("is_active = ?", *f.active)
	}
	return tx
}

// Create registers a customer and returns the record together with the
// plaintext access key — the only time the key is ever visible.
func (s *CustomerService) Create(ctx context.Context, in validation.CreateCustomerInput) envelope.Result {
	if errs := validation.Struct(in); errs != nil {
		return envelope.Invalid("Validation failed", errs...)
	}

	// Fast-path duplicate check; the unique index on phone is the real
	// guarantee against a concurrent insert.
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).
		Where("phone = ?", in.Phone).Count(&count).Error; err != nil {
		s.log.Error("customer phone lookup failed", zap.Error(err))
		return envelope.ServerError("Failed to create customer", err)
	}
	if count > 0 {
		return envelope.Invalid("Validation failed", envelope.FieldError{
			Field: "phone", Message: "is already registered to another customer",
		})
	}

	key, digest, err := accesskey.Generate()
	if err != nil {
		s.log.Error("access key generation failed", zap.Error(err))
		return envelope.ServerError("Failed to create customer", err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	customer := models.Customer{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Phone:           in.Phone,
		Address:         in.Address,
		DefaultItem:     models.ItemType(in.DefaultItem),
		DefaultPrice:    in.DefaultPrice,
		DefaultQuantity: in.DefaultQuantity,
		PaymentCadence:  models.PaymentCadence(in.PaymentCadence),
		OffDays:         models.OffDayList(in.OffDays),
		IsActive:        active,
		AccessKeyHash:   digest,
		AccessKeyExpiry: time.Now().Add(config.AccessKeyTTL()),
	}

	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			// Lost the race against a concurrent insert with the same phone
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "phone", Message: "is already registered to another customer",
			})
		}
		s.log.Error("customer insert failed", zap.Error(err))
		return envelope.ServerError("Failed to create customer", err)
	}

	s.log.Info("customer created", zap.String("customerId", customer.ID))
	return envelope.Created(map[string]interface{}{
		"customer":  customer,
		"accessKey": key,
	})
}

// List returns a page of customers with pagination metadata computed from
// a total-count query over the same filter.
func (s *CustomerService) List(ctx context.Context, q CustomerListQuery) envelope.Result {
	var active *bool
	switch q.Active {
	case "":
	case "true", "false":
		v := q.Active == "true"
		active = &v
	default:
		return envelope.Invalid("Validation failed", envelope.FieldError{
			Field: "active", Message: "must be true or false",
		})
	}

	page, limit, order := q.normalize(customerSortColumns)
	filter := customerFilter{search: q.Search, active: active}

	var total int64
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Customer{})).
		Count(&total).Error; err != nil {
		s.log.Error("customer count failed", zap.Error(err))
		return envelope.ServerError("Failed to list customers", err)
	}

	var customers []models.Customer
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Customer{})).
		Order(order).Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error; err != nil {
		s.log.Error("customer list failed", zap.Error(err))
		return envelope.ServerError("Failed to list customers", err)
	}

	return envelope.OK(map[string]interface{}{
		"customers":  customers,
		"pagination": newPagination(page, limit, total),
	})
}

func (s *CustomerService) Get(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	customer, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	return envelope.OK(map[string]interface{}{"customer": customer})
}

// Update merges only the provided fields onto the stored record. An empty
// valid body is a deliberate no-op returning the unchanged record.
func (s *CustomerService) Update(ctx context.Context, id string, in validation.UpdateCustomerInput) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	customer, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	if errs := validation.Struct(in); errs != nil {
		return envelope.Invalid("Validation failed", errs...)
	}
	// omitempty skips an explicitly empty list, so enforce non-emptiness here
	if in.OffDays != nil && len(in.OffDays) == 0 {
		return envelope.Invalid("Validation failed", envelope.FieldError{
			Field: "offDays", Message: "must contain at least 1 entries",
		})
	}
	if in.Empty() {
		return envelope.OK(map[string]interface{}{"customer": customer})
	}

	if in.Phone != nil && *in.Phone != customer.Phone {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Customer{}).
			Where("phone = ? AND id <> ?", *in.Phone, id).Count(&count).Error; err != nil {
			s.log.Error("customer phone lookup failed", zap.Error(err))
			return envelope.ServerError("Failed to update customer", err)
		}
		if count > 0 {
			return envelope.Invalid("Validation failed", envelope.FieldError{
				Field: "phone", Message: "is already registered to another customer",
			})
		}
	}

	updated := customer
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Phone != nil {
		updated.Phone = *in.Phone
	}
	if in.Address != nil {
		updated.Address = *in.Address
	}
	if in.DefaultItem != nil {
		updated.DefaultItem = models.ItemType(*in.DefaultItem)
	}
	if in.DefaultPrice != nil {
		updated.DefaultPrice = *in.DefaultPrice
	}
	if in.DefaultQuantity != nil {
		updated.DefaultQuantity = *in.DefaultQuantity
	}
	if in.PaymentCadence != nil {
		updated.PaymentCadence = models.PaymentCadence(*in.PaymentCadence)
	}
	if in.OffDays != nil {
		updated.OffDays = models.OffDayList(in.OffDays)
	}
	if in.IsActive != nil {
		updated.IsActive = *in.IsActive
	}

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		s.log.Error("customer update failed", zap.Error(err))
		return envelope.ServerError("Failed to update customer", err)
	}
	return envelope.OK(map[string]interface{}{"customer": updated})
}

// Delete removes the record. Dependent orders and payments are left to
// the store's referential design; no cascade happens here.
func (s *CustomerService) Delete(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	customer, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}
	if err := s.db.WithContext(ctx).Delete(&customer).Error; err != nil {
		s.log.Error("customer delete failed", zap.Error(err))
		return envelope.ServerError("Failed to delete customer", err)
	}
	return envelope.OK(map[string]interface{}{"message": "Customer deleted successfully"})
}

// RegenerateAccessKey overwrites the stored key digest and expiry and
// returns the new plaintext once. The previous key stops matching
// immediately.
func (s *CustomerService) RegenerateAccessKey(ctx context.Context, id string) envelope.Result {
	if !validation.IsStoreID(id) {
		return invalidID()
	}
	customer, res, ok := s.load(ctx, id)
	if !ok {
		return res
	}

	key, digest, err := accesskey.Generate()
	if err != nil {
		s.log.Error("access key generation failed", zap.Error(err))
		return envelope.ServerError("Failed to regenerate access key", err)
	}

	expiry := time.Now().Add(config.AccessKeyTTL())
	if err := s.db.WithContext(ctx).Model(&customer).Updates(map[string]interface{}{
		"access_key_hash":   digest,
		"access_key_expiry": expiry,
	}).Error; err != nil {
		s.log.Error("access key update failed", zap.Error(err))
		return envelope.ServerError("Failed to regenerate access key", err)
	}

	s.log.Info("access key regenerated", zap.String("customerId", customer.ID))
	return envelope.OK(map[string]interface{}{
		"accessKey":       key,
		"accessKeyExpiry": expiry,
	})
}

// load fetches a customer by id, translating absence into the not-found
// envelope. ok is false when res should be returned as-is.
func (s *CustomerService) load(ctx context.Context, id string) (models.Customer, envelope.Result, bool) {
	var customer models.Customer
	err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, envelope.NotFound("Customer"), false
	}
	if err != nil {
		s.log.Error("customer lookup failed", zap.Error(err))
		return customer, envelope.ServerError("Failed to load customer", err), false
	}
	return customer, envelope.Result{}, true
}

func invalidID() envelope.Result {
	return envelope.Invalid("Validation failed", envelope.FieldError{
		Field: "id", Message: "must be a valid identifier",
	})
}
