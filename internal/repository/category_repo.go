// internal/repository/category_repo.go
package repository

import (
	"context"

	"paycart/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	GetCategoryByID(ctx context.Context, q DBExecutor, id int64) (*domain.Category, error)
	GetCategoryByName(ctx context.Context, q DBExecutor, name string) (*domain.Category, error)
	ListCategories(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Category, int64, error)
	UpdateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	TrashCategory(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
