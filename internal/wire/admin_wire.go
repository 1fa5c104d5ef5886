package wire

import (
	"sunainscent-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, authHandler *adaptor.AuthHandler, g guards) {
	r.Route("/admin", func(r chi.Router) {
		// Issues the admin tokens accepted by the order and contact back office.
		r.With(g.loginLimit).Post("/login", authHandler.AdminLogin)

		// ==================== ADMIN FLAG ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.user)
			r.Use(g.adminFlag)
			r.Get("/verify", adminHandler.Verify)
			r.Get("/dashboard", adminHandler.Dashboard)
			r.Get("/products/stats", adminHandler.ProductStats)
			r.Get("/users/stats", adminHandler.UserStats)
			r.Get("/analytics/summary", adminHandler.Analytics)
		})
	})
}
