package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows the public product listing. Category and Search are
// case-insensitive substring matches.
type ProductFilter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)

	CountByActive(ctx context.Context, active bool) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	FindLowStock(ctx context.Context, threshold, limit int) ([]*entity.Product, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, description, price, category, image_url,
		       stock_quantity, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.ImageURL,
		&product.StockQuantity,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, image_url,
		                      stock_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.StockQuantity,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create product", zap.Error(err), zap.String("name", product.Name))
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *productRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active`, id)
}

func (r *productRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

func (r *productRepository) FindActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error) {
	// Build query dengan optional filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productColumns + ` FROM products WHERE is_active`)

	args := []interface{}{}
	argCount := 1

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND category ILIKE $%d ESCAPE '\'`, argCount))
		args = append(args, containsPattern(filter.Category))
		argCount++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND (name ILIKE $%d ESCAPE '\' OR description ILIKE $%d ESCAPE '\')`, argCount, argCount))
		args = append(args, containsPattern(filter.Search))
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("offset", filter.Offset),
			zap.Int("limit", filter.Limit),
		)
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products, err := r.scanProducts(rows)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Products found", zap.Int("count", len(products)))
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6,
		    stock_quantity = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.StockQuantity,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", product.ID.String()))
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID, pgx.ErrNoRows)
	}

	return nil
}

// Deactivate soft-deletes a product. Returns pgx.ErrNoRows when id is unknown.
func (r *productRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, pgx.ErrNoRows)
	}

	r.log.Info("Product soft deleted", zap.String("product_id", id.String()))
	return nil
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM products WHERE is_active ORDER BY category`)
	if err != nil {
		r.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

func (r *productRepository) CountByActive(ctx context.Context, active bool) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = $1`, active).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err), zap.Bool("active", active))
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (r *productRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) FROM products
		WHERE is_active
		GROUP BY category
		ORDER BY COUNT(*) DESC
		LIMIT 100
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count products by category", zap.Error(err))
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (CategoryCount, error) {
		var c CategoryCount
		err := row.Scan(&c.Category, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan category counts: %w", err)
	}
	return counts, nil
}

func (r *productRepository) FindLowStock(ctx context.Context, threshold, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE is_active AND stock_quantity < $1
		ORDER BY stock_quantity ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, threshold, limit)
	if err != nil {
		r.log.Error("Failed to find low stock products", zap.Error(err))
		return nil, fmt.Errorf("failed to find low stock products: %w", err)
	}

	return r.scanProducts(rows)
}

// containsPattern builds an ILIKE pattern matching value literally anywhere.
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}
