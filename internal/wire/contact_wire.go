package wire

import (
	"sunainscent-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContact(r chi.Router, contactHandler *adaptor.ContactHandler, g guards) {
	r.Route("/contact", func(r chi.Router) {
		r.Post("/", contactHandler.SubmitMessage)

		// ==================== ADMIN TOKEN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.adminToken)
			r.Get("/stats", contactHandler.GetStats)
			r.Get("/messages", contactHandler.GetMessages)
			r.Post("/messages/mark-all-read", contactHandler.MarkAllRead)
			r.Get("/messages/{id}", contactHandler.GetMessageByID)
			r.Put("/messages/{id}", contactHandler.UpdateMessage)
			r.Delete("/messages/{id}", contactHandler.DeleteMessage)
			r.Post("/messages/{id}/mark-read", contactHandler.MarkRead)
		})
	})
}
