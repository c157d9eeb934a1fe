package validation

// CreateCustomerInput is the schema for registering a new customer.
// The access key is generated server-side and is never part of the input.
type CreateCustomerInput struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Phone           string   `json:"phone" validate:"required,phone"`
	Address         string   `json:"address" validate:"max=250"`
	DefaultItem     string   `json:"defaultItem" validate:"required,oneof=milk water_jar tiffin"`
	DefaultPrice    float64  `json:"defaultPrice" validate:"required,gt=0"`
	DefaultQuantity int      `json:"defaultQuantity" validate:"required,min=1"`
	PaymentCadence  string   `json:"paymentCadence" validate:"required,oneof=daily weekly monthly"`
	OffDays         []string `json:"offDays" validate:"required,min=1,unique,dive,weekday"`
	IsActive        *bool    `json:"isActive"`
}

// UpdateCustomerInput keeps every per-field constraint of the create
// schema but makes every field optional. A fully omitted body is valid
// and updates nothing.
type UpdateCustomerInput struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone           *string  `json:"phone" validate:"omitempty,phone"`
	Address         *string  `json:"address" validate:"omitempty,max=250"`
	DefaultItem     *string  `json:"defaultItem" validate:"omitempty,oneof=milk water_jar tiffin"`
	DefaultPrice    *float64 `json:"defaultPrice" validate:"omitempty,gt=0"`
	DefaultQuantity *int     `json:"defaultQuantity" validate:"omitempty,min=1"`
	PaymentCadence  *string  `json:"paymentCadence" validate:"omitempty,oneof=daily weekly monthly"`
	OffDays         []string `json:"offDays" validate:"omitempty,min=1,unique,dive,weekday"`
	IsActive        *bool    `json:"isActive"`
}

// Empty reports whether no field was provided at all.
func (in UpdateCustomerInput) Empty() bool {
	return in.Name == nil &&
		in.Phone == nil &&
		in.Address == nil &&
		in.DefaultItem == nil &&
		in.DefaultPrice == nil &&
		in.DefaultQuantity == nil &&
		in.PaymentCadence == nil &&
		in.OffDays == nil &&
		in.IsActive == nil
}
