package usecase

import (
	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
	Contact ContactService
	Admin   AdminService
}

func NewService(
	repo *repository.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	admin := auth.AdminCredentials{
		Email:    config.Admin.Email,
		Password: config.Admin.Password,
	}

	return &Service{
		Auth:    NewAuthService(repo.User, hasher, tokens, admin, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo.Order, log),
		Contact: NewContactService(repo.Contact, log),
		Admin:   NewAdminService(repo, log),
	}
}
