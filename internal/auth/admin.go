package auth

import "crypto/subtle"

// AdminCredentials is the single configured admin account. It has no user
// record; a successful match yields an admin token.
type AdminCredentials struct {
	Email    string
	Password string
}

// Match compares email and password against the configured pair in constant
// time. Unset credentials never match.
func (c AdminCredentials) Match(email, password string) bool {
	if c.Email == "" || c.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return emailOK&passwordOK == 1
}
