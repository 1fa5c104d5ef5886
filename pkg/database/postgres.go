package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"sunainscent-api/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable marks failures caused by the store being unreachable or
// never configured.
var ErrUnavailable = errors.New("database unavailable")

// PgxIface interface untuk abstraction database
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// DB wraps a pgx pool. Driver errors are passed through unchanged except
// connection failures, which are tagged with ErrUnavailable.
type DB struct {
	pool *pgxpool.Pool
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := db.pool.Query(ctx, sql, args...)
	return rows, classify(err)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return classifiedRow{row: db.pool.QueryRow(ctx, sql, args...)}
}

func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := db.pool.Exec(ctx, sql, args...)
	return tag, classify(err)
}

func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := db.pool.Begin(ctx)
	return tx, classify(err)
}

func (db *DB) Ping(ctx context.Context) error {
	return classify(db.pool.Ping(ctx))
}

func (db *DB) Close() {
	db.pool.Close()
}

// Pool exposes the underlying pool for migrations.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

type classifiedRow struct {
	row pgx.Row
}

func (r classifiedRow) Scan(dest ...any) error {
	return classify(r.row.Scan(dest...))
}

// classify tags connection-level failures with ErrUnavailable. Query errors
// reported by the server (pgconn.PgError) and pgx.ErrNoRows pass through.
func classify(err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) || isConnectError(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func isConnectError(err error) bool {
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// ConnString renders config as a postgres:// URL. Credentials and the
// database name are escaped, so any characters are allowed in them.
func ConnString(config utils.DatabaseConfig) string {
	host := config.Host
	if config.Port != "" {
		host = net.JoinHostPort(config.Host, config.Port)
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + config.Name,
		RawQuery: url.Values{"sslmode": {"disable"}}.Encode(),
	}
	if config.User != "" {
		u.User = url.UserPassword(config.User, config.Password)
	}
	return u.String()
}

// InitDB membuat koneksi database pool
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	if config.Host == "" || config.Name == "" {
		return nil, fmt.Errorf("%w: DB_HOST and DB_NAME are not configured", ErrUnavailable)
	}

	poolConfig, err := pgxpool.ParseConfig(ConnString(config))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 45 * time.Second
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping database failed: %w", ErrUnavailable, err)
	}

	return &DB{pool: pool}, nil
}
