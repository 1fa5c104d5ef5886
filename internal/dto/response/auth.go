package response

import (
	"time"

	"sunainscent-api/internal/data/entity"
)

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func NewBearerToken(token string, expiresAt time.Time) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsAdmin   bool      `json:"is_admin"`
}

type VerifyTokenResponse struct {
	Valid bool   `json:"valid"`
	User  string `json:"user"`
}

type AdminVerifyResponse struct {
	AdminEmail string `json:"admin_email"`
	IsAdmin    bool   `json:"is_admin"`
}

// Helper converters
func UserToResponse(user *entity.User, isAdmin bool) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		IsAdmin:   isAdmin,
	}
}
