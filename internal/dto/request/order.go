package request

type OrderItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
}

type ShippingAddressRequest struct {
	FullName      string  `json:"full_name" validate:"required,min=2,max=100"`
	StreetAddress string  `json:"street_address" validate:"required,min=5,max=200"`
	City          string  `json:"city" validate:"required,min=2,max=100"`
	State         string  `json:"state" validate:"required,min=2,max=100"`
	PostalCode    string  `json:"postal_code" validate:"required,min=3,max=20"`
	Country       string  `json:"country" validate:"required,min=2,max=100"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type OrderRequest struct {
	CustomerEmail   string                 `json:"customer_email" validate:"required,email"`
	CustomerName    string                 `json:"customer_name" validate:"required,min=2,max=100"`
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	Notes           *string                `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type OrderUpdateRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=1000"`
}

type OrderListQuery struct {
	PageQuery
	Status        string
	CustomerEmail string
	Search        string
}
