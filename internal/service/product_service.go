// internal/service/product_service.go
package service

import (
	"context"
	"fmt"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// ProductUpdate carries the partial update for a product. Nil fields are left unchanged.
type ProductUpdate struct {
	Name  *string
	Count *int64
}

// ProductService defines the interface for product-related business logic.
type ProductService interface {
	CreateProduct(ctx context.Context, name string, count, categoryID int64) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	UpdateProduct(ctx context.Context, id int64, update ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	dbExecutor   repository.DBExecutor
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(
	dbExecutor repository.DBExecutor,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) ProductService {
	return &productService{
		dbExecutor:   dbExecutor,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, name string, count, categoryID int64) (*domain.Product, error) {
	if name == "" || count < 0 {
		return nil, util.ErrInvalidInput
	}

	_, err := s.productRepo.GetProductByName(ctx, s.dbExecutor, name)
	if err == nil {
		return nil, util.ErrProductAlreadyExists
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create product: failed to check existing product: %w", err)
	}

	// The category is referenced by plain ID; verify it is live first.
	if _, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, categoryID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("create product: failed to check category %d: %w", categoryID, err)
	}

	product := domain.NewProduct(name, count, categoryID)
	if err := s.productRepo.CreateProduct(ctx, s.dbExecutor, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: failed to get product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	products, totalCount, err := s.productRepo.ListProducts(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, totalCount, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, update ProductUpdate) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: failed to get product %d: %w", id, err)
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Count != nil {
		if *update.Count < 0 {
			return nil, util.ErrInvalidInput
		}
		product.Count = *update.Count
	}

	if err := s.productRepo.UpdateProduct(ctx, s.dbExecutor, product); err != nil {
		return nil, fmt.Errorf("update product: failed to save product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	trashed, err := s.productRepo.TrashProduct(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete product: failed to trash product %d: %w", id, err)
	}
	if !trashed {
		return util.ErrProductNotFound
	}
	return nil
}
