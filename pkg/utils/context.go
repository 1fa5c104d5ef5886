package utils

import (
	"context"

	"sunainscent-api/internal/auth"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
)

// SetPrincipalContext attaches the resolved principal to ctx.
func SetPrincipalContext(ctx context.Context, principal auth.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipalFromContext returns whichever principal the gate resolved.
func GetPrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(auth.Principal)
	return principal, ok
}

// GetUserFromContext returns the principal set by the user gate.
func GetUserFromContext(ctx context.Context) (*auth.RegularPrincipal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*auth.RegularPrincipal)
	return principal, ok
}

// GetAdminFromContext returns the principal set by the admin-token gate.
func GetAdminFromContext(ctx context.Context) (*auth.AdminPrincipal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*auth.AdminPrincipal)
	return principal, ok
}
