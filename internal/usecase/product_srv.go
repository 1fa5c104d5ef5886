package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/dto/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, query request.ProductListQuery) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetCategories(ctx context.Context) (*response.CategoriesResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, query request.ProductListQuery) ([]response.ProductResponse, error) {
	products, err := s.repo.FindActive(ctx, repository.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
		Offset:   query.Offset(),
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := parseID("product", productID)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, notFound("product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	now := time.Now().UTC()
	product := &entity.Product{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("category", product.Category),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	id, err := parseID("product", productID)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, notFound("product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("product")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// DeleteProduct hides the product from the catalog; the row is kept.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := parseID("product", productID)
	if err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound("product")
		}
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}

func (s *productService) GetCategories(ctx context.Context) (*response.CategoriesResponse, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return &response.CategoriesResponse{Categories: categories}, nil
}
