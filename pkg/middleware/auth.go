package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sunainscent-api/internal/auth"
	"sunainscent-api/pkg/utils"

	"go.uber.org/zap"
)

// Resolver is the part of auth.Resolver the gates depend on.
type Resolver interface {
	ResolveUser(ctx context.Context, token string) (*auth.RegularPrincipal, error)
	ResolveAdmin(token string) (*auth.AdminPrincipal, error)
}

const (
	msgNotAuthenticated = "Not authenticated"
	msgBadCredentials   = "Could not validate credentials"
	msgAdminRequired    = "Admin access required"
	msgUnavailable      = "Service temporarily unavailable"
)

// bearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// RequireUser resolves a user token into a RegularPrincipal. Any token or
// identity failure is a 401; a store outage is a 503.
func RequireUser(resolver Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.ResponseUnauthorized(w, msgNotAuthenticated)
				return
			}

			principal, err := resolver.ResolveUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrServiceUnavailable) {
					logger.Error("User gate: store unavailable", zap.Error(err), zap.String("path", r.URL.Path))
					utils.ResponseServiceUnavailable(w, msgUnavailable)
					return
				}
				logger.Debug("User gate: rejected", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, msgBadCredentials)
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminToken accepts only tokens issued by the admin login. It never
// reads the store. Rejections are 401 "Admin access required".
func RequireAdminToken(resolver Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.ResponseUnauthorized(w, msgNotAuthenticated)
				return
			}

			principal, err := resolver.ResolveAdmin(token)
			if err != nil {
				logger.Warn("Admin token gate: rejected",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseUnauthorized(w, msgAdminRequired)
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminFlag runs after RequireUser and lets through only users whose
// email is the configured admin email.
func RequireAdminFlag(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, msgNotAuthenticated)
				return
			}

			if !principal.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", principal.User.ID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, msgAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
