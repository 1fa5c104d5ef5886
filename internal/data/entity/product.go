package entity

// Product is a catalog item. Deleting a product only clears IsActive.
type Product struct {
	BaseNoDelete
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Price         float64 `db:"price"`
	Category      string  `db:"category"`
	ImageURL      *string `db:"image_url"`
	StockQuantity int     `db:"stock_quantity"`
	IsActive      bool    `db:"is_active"`
}
