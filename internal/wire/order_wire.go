package wire

import (
	"sunainscent-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, g guards) {
	r.Route("/orders", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/number/{orderNumber}", orderHandler.GetOrderByNumber)

		// ==================== USER ROUTES ====================
		r.With(g.user).Get("/my-orders", orderHandler.GetMyOrders)

		// ==================== ADMIN TOKEN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.adminToken)
			r.Get("/", orderHandler.GetOrders)
			r.Get("/stats/overview", orderHandler.GetOrderStats)
			r.Get("/status/{status}", orderHandler.GetOrdersByStatus)
			r.Get("/{id}", orderHandler.GetOrderByID)
			r.Put("/{id}", orderHandler.UpdateOrder)
			r.Delete("/{id}", orderHandler.DeleteOrder)
			r.Post("/{id}/update-status", orderHandler.UpdateOrderStatus)
		})
	})
}
