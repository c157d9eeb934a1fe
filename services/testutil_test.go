package services

import (
	"context"
	"fmt"
	"testing"

	"daily-delivery-api/envelope"
	"daily-delivery-api/models"
	"daily-delivery-api/validation"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database migrated with every model.
// The named shared-cache DSN keeps the schema alive across pooled
// connections for the lifetime of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.Payment{}))
	return db
}

func validCustomerInput(phone string) validation.CreateCustomerInput {
	return validation.CreateCustomerInput{
		Name:            "Rahim Uddin",
		Phone:           phone,
		Address:         "12 Lake Road",
		DefaultItem:     "milk",
		DefaultPrice:    60,
		DefaultQuantity: 2,
		PaymentCadence:  "monthly",
		OffDays:         []string{"friday"},
	}
}

// mustCreateCustomer inserts a customer fixture and returns the record
// plus its one-time plaintext access key.
func mustCreateCustomer(t *testing.T, svc *CustomerService, phone string) (models.Customer, string) {
	t.Helper()
	res := svc.Create(context.Background(), validCustomerInput(phone))
	require.Equal(t, envelope.KindCreated, res.Kind, "fixture create: %s", res.Message)
	return res.Data["customer"].(models.Customer), res.Data["accessKey"].(string)
}

// fieldErrors collects the violated field names from a validation result.
func fieldErrors(res envelope.Result) []string {
	fields := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
