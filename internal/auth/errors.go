package auth

import "errors"

// Kind classifies an authentication or authorization failure.
type Kind string

const (
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidToken       Kind = "invalid_token"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindUnavailable        Kind = "service_unavailable"
)

// Error is the structured failure returned by the auth core.
// Two errors are considered equal by errors.Is when their kinds match.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

var (
	// ErrInvalidCredentials never says which half of the pair was wrong.
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "incorrect email or password"}
	ErrInvalidToken       = &Error{Kind: KindInvalidToken, Message: "invalid token"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "could not validate credentials"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "admin access required"}
	ErrServiceUnavailable = &Error{Kind: KindUnavailable, Message: "service unavailable"}
)

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
