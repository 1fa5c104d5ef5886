package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload signed into every token. IsAdmin is only set on
// tokens minted by the admin login path.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin,omitempty"`
}

// TokenService issues and verifies stateless HMAC-signed JWTs.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService for the given secret, HMAC algorithm
// name (HS256, HS384, HS512) and default token lifetime.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs claims with an expiry of now+ttl. Any ExpiresAt or IssuedAt
// already present on claims is overwritten.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)

	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// IssueUserToken issues a default-lifetime token carrying only the subject.
func (s *TokenService) IssueUserToken(email string) (string, time.Time, error) {
	return s.Issue(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: email}}, s.ttl)
}

// IssueAdminToken issues a default-lifetime token with the is_admin claim set.
func (s *TokenService) IssueAdminToken(email string) (string, time.Time, error) {
	return s.Issue(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		IsAdmin:          true,
	}, s.ttl)
}

// Verify checks the signature, algorithm and expiry of token and returns its
// claims. It never consults the store.
func (s *TokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newError(KindInvalidToken, "token expired", err)
		}
		return nil, newError(KindInvalidToken, "invalid token", err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	// Expiry is second-granular; a token whose expiry is not strictly in the
	// future is already dead.
	if !claims.ExpiresAt.After(s.now()) {
		return nil, newError(KindInvalidToken, "token expired", jwt.ErrTokenExpired)
	}

	return claims, nil
}
