package response

import (
	"time"

	"sunainscent-api/internal/data/entity"
)

type OrderResponse struct {
	ID              string                 `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerName    string                 `json:"customer_name"`
	Items           []entity.OrderItem     `json:"items"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	Status          entity.OrderStatus     `json:"status"`
	TotalAmount     float64                `json:"total_amount"`
	Notes           *string                `json:"notes,omitempty"`
	AdminNotes      *string                `json:"admin_notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type OrderStats struct {
	TotalOrders      int64   `json:"total_orders"`
	PendingOrders    int64   `json:"pending_orders"`
	OrdersToday      int64   `json:"orders_today"`
	OrdersThisWeek   int64   `json:"orders_this_week"`
	TotalRevenue     float64 `json:"total_revenue"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
}

type OrdersByStatusResponse struct {
	Status entity.OrderStatus `json:"status"`
	Count  int                `json:"count"`
	Orders []OrderResponse    `json:"orders"`
}

// OrderSummary is the short form shown on the admin dashboard.
type OrderSummary struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	TotalAmount   float64            `json:"total_amount"`
	Status        entity.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := order.Items
	if items == nil {
		items = []entity.OrderItem{}
	}
	return OrderResponse{
		ID:              order.ID.String(),
		OrderNumber:     order.OrderNumber,
		CustomerEmail:   order.CustomerEmail,
		CustomerName:    order.CustomerName,
		Items:           items,
		ShippingAddress: order.ShippingAddress,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount,
		Notes:           order.Notes,
		AdminNotes:      order.AdminNotes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, OrderToResponse(o))
	}
	return resp
}

func OrderToSummary(order *entity.Order) OrderSummary {
	return OrderSummary{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
	}
}
