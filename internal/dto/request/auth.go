package request

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
}

// LoginRequest is shared by the customer and the admin login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
