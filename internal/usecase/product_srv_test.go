package usecase

import (
	"context"
	"testing"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProduct(repo *memProducts, name, category string, active bool, stock int) *entity.Product {
	p := &entity.Product{
		BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: fixedNow, UpdatedAt: fixedNow},
		Name:          name,
		Description:   name + " eau de parfum",
		Price:         120000,
		Category:      category,
		StockQuantity: stock,
		IsActive:      active,
	}
	repo.products = append(repo.products, p)
	return p
}

func TestProductService_CreateProductDefaultsActive(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())

	resp, err := s.CreateProduct(context.Background(), &request.ProductRequest{
		Name:          "Oud Noir",
		Description:   "Smoky oud",
		Price:         250000,
		Category:      "unisex",
		StockQuantity: 12,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.products, 1)

	inactive := false
	resp, err = s.CreateProduct(context.Background(), &request.ProductRequest{
		Name:        "Draft",
		Description: "Not yet",
		Price:       1,
		Category:    "unisex",
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestProductService_GetProductByID_HidesInactive(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())
	active := seedProduct(repo, "Rose Mist", "women", true, 5)
	hidden := seedProduct(repo, "Old Musk", "men", false, 5)

	resp, err := s.GetProductByID(context.Background(), active.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Rose Mist", resp.Name)

	_, err = s.GetProductByID(context.Background(), hidden.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetProductByID(context.Background(), "xyz")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestProductService_UpdateProductIsPartial(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())
	p := seedProduct(repo, "Rose Mist", "women", false, 5)

	price := 99000.0
	active := true
	resp, err := s.UpdateProduct(context.Background(), p.ID.String(), &request.ProductUpdateRequest{
		Price:    &price,
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rose Mist", resp.Name)
	assert.Equal(t, "women", resp.Category)
	assert.InDelta(t, 99000.0, resp.Price, 1e-9)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.UpdatedAt.After(fixedNow))
}

func TestProductService_DeleteProductDeactivates(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())
	p := seedProduct(repo, "Rose Mist", "women", true, 5)

	require.NoError(t, s.DeleteProduct(context.Background(), p.ID.String()))
	assert.False(t, p.IsActive)
	assert.Len(t, repo.products, 1)

	assert.ErrorIs(t, s.DeleteProduct(context.Background(), uuid.NewString()), ErrNotFound)
}

func TestProductService_GetCategories(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())

	resp, err := s.GetCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Categories)
	assert.Empty(t, resp.Categories)

	seedProduct(repo, "A", "women", true, 1)
	seedProduct(repo, "B", "men", true, 1)
	seedProduct(repo, "C", "women", true, 1)
	seedProduct(repo, "D", "kids", false, 1)

	resp, err = s.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"men", "women"}, resp.Categories)
}

func TestProductService_GetProducts(t *testing.T) {
	t.Parallel()

	repo := &memProducts{}
	s := NewProductService(repo, zap.NewNop())
	seedProduct(repo, "A", "women", true, 1)
	seedProduct(repo, "B", "men", true, 1)
	seedProduct(repo, "C", "women", false, 1)

	products, err := s.GetProducts(context.Background(), request.ProductListQuery{
		PageQuery: request.PageQuery{Limit: 100},
		Category:  "women",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)
}
