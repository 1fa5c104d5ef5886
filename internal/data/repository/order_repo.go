package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderFilter narrows the admin order listing. CustomerEmail and Search are
// case-insensitive substring matches.
type OrderFilter struct {
	Status        entity.OrderStatus
	CustomerEmail string
	Search        string
	Offset        int
	Limit         int
}

type DailyOrderStat struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type ProductSales struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	FindByCustomerEmail(ctx context.Context, email string, offset, limit int) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, status entity.OrderStatus) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	Revenue(ctx context.Context, since time.Time) (float64, error)
	DailyStats(ctx context.Context, since time.Time) ([]DailyOrderStat, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, customer_email, customer_name, items, shipping_address,
		       status, total_amount, notes, admin_notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerEmail,
		&order.CustomerName,
		&order.Items,
		&order.ShippingAddress,
		&order.Status,
		&order.TotalAmount,
		&order.Notes,
		&order.AdminNotes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_email, customer_name, items,
		                    shipping_address, status, total_amount, notes, admin_notes,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.CustomerEmail,
		order.CustomerName,
		order.Items,
		order.ShippingAddress,
		order.Status,
		order.TotalAmount,
		order.Notes,
		order.AdminNotes,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create order %s: %w", order.OrderNumber, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create order", zap.Error(err), zap.String("order_number", order.OrderNumber))
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by number", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + orderColumns + ` FROM orders WHERE TRUE`)

	args := []interface{}{}
	argCount := 1

	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, filter.Status)
		argCount++
	}

	if filter.CustomerEmail != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND customer_email ILIKE $%d ESCAPE '\'`, argCount))
		args = append(args, containsPattern(filter.CustomerEmail))
		argCount++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND (order_number ILIKE $%[1]d ESCAPE '\'
			OR customer_name ILIKE $%[1]d ESCAPE '\'
			OR customer_email ILIKE $%[1]d ESCAPE '\'
			OR EXISTS (SELECT 1 FROM jsonb_array_elements(items) AS item
			           WHERE item->>'product_name' ILIKE $%[1]d ESCAPE '\'))`, argCount))
		args = append(args, containsPattern(filter.Search))
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find orders", zap.Error(err), zap.String("status", string(filter.Status)))
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return r.scanOrders(rows)
}

// FindByCustomerEmail matches the customer email exactly.
func (r *orderRepository) FindByCustomerEmail(ctx context.Context, email string, offset, limit int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE customer_email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find customer orders", zap.Error(err))
		return nil, fmt.Errorf("failed to find customer orders: %w", err)
	}

	return r.scanOrders(rows)
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `UPDATE orders SET status = $2, admin_notes = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, order.ID, order.Status, order.AdminNotes, order.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", order.ID.String()))
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", order.ID, pgx.ErrNoRows)
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", id.String()))
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", id.String()))
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, pgx.ErrNoRows)
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

// Count counts orders with status, or all orders when status is empty.
func (r *orderRepository) Count(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE $1 = '' OR status = $1`, string(status)).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err), zap.String("status", string(status)))
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

func (r *orderRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count recent orders", zap.Error(err), zap.Time("since", since))
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// Revenue sums total_amount of orders created at or after since. A zero
// since covers every order.
func (r *orderRepository) Revenue(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE created_at >= $1`, since).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum revenue", zap.Error(err), zap.Time("since", since))
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

func (r *orderRepository) DailyStats(ctx context.Context, since time.Time) ([]DailyOrderStat, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
		       COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to aggregate daily orders", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate daily orders: %w", err)
	}

	stats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (DailyOrderStat, error) {
		var s DailyOrderStat
		err := row.Scan(&s.Date, &s.Orders, &s.Revenue)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily stats: %w", err)
	}
	return stats, nil
}

func (r *orderRepository) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY COUNT(*) DESC`)
	if err != nil {
		r.log.Error("Failed to aggregate order statuses", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate statuses: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (StatusCount, error) {
		var c StatusCount
		err := row.Scan(&c.Status, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan status counts: %w", err)
	}
	return counts, nil
}

func (r *orderRepository) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	query := `
		SELECT item->>'product_name' AS product_name,
		       SUM((item->>'quantity')::bigint) AS total_quantity,
		       SUM((item->>'price')::double precision * (item->>'quantity')::bigint) AS total_revenue
		FROM orders, jsonb_array_elements(items) AS item
		GROUP BY product_name
		ORDER BY total_quantity DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to aggregate top products", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProductSales, error) {
		var s ProductSales
		err := row.Scan(&s.ProductName, &s.TotalQuantity, &s.TotalRevenue)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top products: %w", err)
	}
	return sales, nil
}
