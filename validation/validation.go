// Package validation holds the per-operation input schemas and the shared
// validator instance. The validator is built once at init and is safe for
// concurrent use; schemas are plain structs with validate tags.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"daily-delivery-api/envelope"
	"daily-delivery-api/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the wire format for order/payment dates and range filters.
const DateLayout = "2006-01-02"

// phonePattern: two fixed leading digits followed by nine more.
var phonePattern = regexp.MustCompile(`^01\d{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		day := fl.Field().String()
		for _, d := range models.WeekDays {
			if d == day {
				return true
			}
		}
		return false
	})
	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// Struct validates in against its schema tags and returns one field error
// per violated constraint, or nil when the input is valid.
func Struct(in interface{}) []envelope.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []envelope.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]envelope.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, envelope.FieldError{
			Field:   fieldPath(fe),
			Message: constraintMessage(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name, keeping nested/indexed segments
// such as "offDays[2]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone":
		return "must be a valid phone number (01 followed by 9 digits)"
	case "weekday":
		return "must be one of: " + strings.Join(models.WeekDays, ", ")
	case "dateonly":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "unique":
		return "must not contain duplicates"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// IsStoreID reports whether id is a well-formed store key. Services call
// this before any lookup so malformed keys never reach the store.
func IsStoreID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Date parses a YYYY-MM-DD string.
func Date(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
