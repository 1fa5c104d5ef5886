package request

type ProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Description   string  `json:"description" validate:"required,min=1"`
	Price         float64 `json:"price" validate:"gt=0"`
	Category      string  `json:"category" validate:"required,min=1,max=100"`
	ImageURL      *string `json:"image_url,omitempty"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// ProductUpdateRequest only touches the fields that are present.
type ProductUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	ImageURL      *string  `json:"image_url,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type ProductListQuery struct {
	PageQuery
	Category string
	Search   string
}
