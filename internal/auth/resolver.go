package auth

import (
	"context"

	"sunainscent-api/internal/data/entity"

	"go.uber.org/zap"
)

// UserFinder is the store lookup the resolver needs. It returns (nil, nil)
// when no user has the given email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Resolver turns bearer tokens into principals.
type Resolver struct {
	tokens     *TokenService
	users      UserFinder
	adminEmail string
	log        *zap.Logger
}

func NewResolver(tokens *TokenService, users UserFinder, adminEmail string, log *zap.Logger) *Resolver {
	return &Resolver{
		tokens:     tokens,
		users:      users,
		adminEmail: adminEmail,
		log:        log.With(zap.String("component", "resolver")),
	}
}

// ResolveUser verifies token, loads the subject's user record and computes
// admin status by exact comparison with the configured admin email.
// Bad tokens and unknown users both fail with ErrUnauthorized; store failures
// fail with ErrServiceUnavailable.
func (r *Resolver) ResolveUser(ctx context.Context, token string) (*RegularPrincipal, error) {
	claims, err := r.tokens.Verify(token)
	if err != nil {
		r.log.Debug("User token rejected", zap.Error(err))
		return nil, newError(KindUnauthorized, ErrUnauthorized.Message, err)
	}

	// Admin-login tokens carry no user identity.
	if claims.IsAdmin {
		r.log.Debug("Admin token presented to user gate")
		return nil, ErrUnauthorized
	}

	email := claims.Subject
	if email == "" {
		return nil, ErrUnauthorized
	}

	user, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		r.log.Error("Failed to load user for token", zap.Error(err))
		return nil, newError(KindUnavailable, ErrServiceUnavailable.Message, err)
	}
	if user == nil {
		r.log.Debug("Token subject not found")
		return nil, ErrUnauthorized
	}

	return &RegularPrincipal{
		User:  user,
		Admin: r.adminEmail != "" && user.Email == r.adminEmail,
	}, nil
}

// ResolveAdmin accepts only tokens minted by the admin login path. It never
// reads the store.
func (r *Resolver) ResolveAdmin(token string) (*AdminPrincipal, error) {
	claims, err := r.tokens.Verify(token)
	if err != nil {
		r.log.Debug("Admin token rejected", zap.Error(err))
		return nil, newError(KindForbidden, ErrForbidden.Message, err)
	}

	if claims.Subject == "" || !claims.IsAdmin {
		return nil, ErrForbidden
	}

	return &AdminPrincipal{Subject: claims.Subject}, nil
}
