package validation

// CreateOrderInput is the schema for a staff-created order. Item, price
// and quantity are optional; omitted values fall back to the owning
// customer's defaults.
type CreateOrderInput struct {
	CustomerID string   `json:"customerId" validate:"required"`
	Date       string   `json:"date" validate:"required,dateonly"`
	Item       string   `json:"item" validate:"omitempty,oneof=milk water_jar tiffin"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity   *int     `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateOrderInput struct {
	Date     *string  `json:"date" validate:"omitempty,dateonly"`
	Item     *string  `json:"item" validate:"omitempty,oneof=milk water_jar tiffin"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,min=1"`
}

func (in UpdateOrderInput) Empty() bool {
	return in.Date == nil && in.Item == nil && in.Price == nil && in.Quantity == nil
}
