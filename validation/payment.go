package validation

// CreatePaymentInput is the schema for recording a customer payment.
type CreatePaymentInput struct {
	CustomerID string  `json:"customerId" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,dateonly"`
	Note       string  `json:"note" validate:"max=250"`
}
