// internal/repository/product_repo.go
package repository

import (
	"context"

	"paycart/internal/domain"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, q DBExecutor, product *domain.Product) error
	GetProductByID(ctx context.Context, q DBExecutor, id int64) (*domain.Product, error)
	GetProductByName(ctx context.Context, q DBExecutor, name string) (*domain.Product, error)
	ListProducts(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Product, int64, error)
	UpdateProduct(ctx context.Context, q DBExecutor, product *domain.Product) error
	TrashProduct(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
