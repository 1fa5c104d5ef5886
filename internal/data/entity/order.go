package entity

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem snapshots the product name and price at order time.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type ShippingAddress struct {
	FullName      string  `json:"full_name"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PostalCode    string  `json:"postal_code"`
	Country       string  `json:"country"`
	Phone         *string `json:"phone,omitempty"`
}

// Order is a placed order. Items and ShippingAddress are stored as JSONB.
type Order struct {
	BaseNoDelete
	OrderNumber     string          `db:"order_number"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerName    string          `db:"customer_name"`
	Items           []OrderItem     `db:"items"`
	ShippingAddress ShippingAddress `db:"shipping_address"`
	Status          OrderStatus     `db:"status"`
	TotalAmount     float64         `db:"total_amount"`
	Notes           *string         `db:"notes"`
	AdminNotes      *string         `db:"admin_notes"`
}
