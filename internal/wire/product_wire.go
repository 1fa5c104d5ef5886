package wire

import (
	"sunainscent-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, g guards) {
	r.Route("/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", productHandler.GetProducts)
		r.Get("/categories/list", productHandler.GetCategories)
		r.Get("/{id}", productHandler.GetProductByID)

		// Catalog writes only need a signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(g.user)
			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})
}
