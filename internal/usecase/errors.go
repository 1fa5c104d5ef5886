package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidID       = errors.New("malformed uuid")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrEmailRegistered = errors.New("email already registered")
)

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

func parseID(what, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID: %w", what, ErrInvalidID)
	}
	return id, nil
}
