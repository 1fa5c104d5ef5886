package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	Profile(principal *auth.RegularPrincipal) response.UserResponse
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
	admin  auth.AdminCredentials
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	admin auth.AdminCredentials,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		admin:  admin,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Email:        req.Email,
		PasswordHash: hashed,
		FirstName:    req.FirstName,
		Phone:        req.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailRegistered
		}
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user, false)
	return &resp, nil
}

// Login exchanges an email/password pair for a user token. An unknown email
// and a wrong password fail identically.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected")
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.IssueUserToken(user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.NewBearerToken(token, expiresAt)
	return &resp, nil
}

// AdminLogin checks the configured admin credentials and mints an admin
// token. It never touches the user store.
func (s *authService) AdminLogin(_ context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	if !s.admin.Match(req.Email, req.Password) {
		s.log.Warn("Admin login rejected")
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.IssueAdminToken(req.Email)
	if err != nil {
		s.log.Error("Failed to issue admin token", zap.Error(err))
		return nil, fmt.Errorf("issue admin token: %w", err)
	}

	s.log.Info("Admin logged in")

	resp := response.NewBearerToken(token, expiresAt)
	return &resp, nil
}

func (s *authService) Profile(principal *auth.RegularPrincipal) response.UserResponse {
	return response.UserToResponse(principal.User, principal.IsAdmin())
}
