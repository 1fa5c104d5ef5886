package wire

import (
	"sunainscent-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	r.Route("/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.With(g.loginLimit).Post("/login", authHandler.Login)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.user)
			r.Get("/me", authHandler.Me)
			r.Get("/verify-token", authHandler.VerifyToken)
		})
	})
}
