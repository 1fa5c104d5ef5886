package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unavailable stands in for the store when startup could not connect. The
// service keeps serving and every store call fails with ErrUnavailable.
type Unavailable struct {
	cause error
}

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{cause: cause}
}

func (u *Unavailable) err() error {
	if u.cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

func (u *Unavailable) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, u.err()
}

func (u *Unavailable) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{err: u.err()}
}

func (u *Unavailable) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, u.err()
}

func (u *Unavailable) Begin(context.Context) (pgx.Tx, error) {
	return nil, u.err()
}

func (u *Unavailable) Ping(context.Context) error {
	return u.err()
}

func (u *Unavailable) Close() {}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
