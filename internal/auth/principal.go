package auth

import "sunainscent-api/internal/data/entity"

// Principal is the identity attached to an authenticated request. It is
// either a *RegularPrincipal or an *AdminPrincipal.
type Principal interface {
	Email() string
	IsAdmin() bool
	principal()
}

// RegularPrincipal is resolved from a user token against the store. Admin is
// computed at resolution time and never persisted.
type RegularPrincipal struct {
	User  *entity.User
	Admin bool
}

func (p *RegularPrincipal) Email() string { return p.User.Email }
func (p *RegularPrincipal) IsAdmin() bool { return p.Admin }
func (*RegularPrincipal) principal()      {}

// AdminPrincipal is built purely from an admin token's claims; there is no
// backing user record.
type AdminPrincipal struct {
	Subject string
}

func (p *AdminPrincipal) Email() string { return p.Subject }
func (*AdminPrincipal) IsAdmin() bool   { return true }
func (*AdminPrincipal) principal()      {}
