// internal/service/category_service.go
package service

import (
	"context"
	"fmt"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// CategoryUpdate carries the partial update for a category. Nil fields are left unchanged.
type CategoryUpdate struct {
	Name        *string
	OrderValue  *int64
	Description *string
}

// CategoryService defines the interface for category-related business logic.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string, orderValue int64, description string) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, int64, error)
	UpdateCategory(ctx context.Context, id int64, update CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	dbExecutor   repository.DBExecutor
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(dbExecutor repository.DBExecutor, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		dbExecutor:   dbExecutor,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string, orderValue int64, description string) (*domain.Category, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	_, err := s.categoryRepo.GetCategoryByName(ctx, s.dbExecutor, name)
	if err == nil {
		return nil, util.ErrCategoryAlreadyExists
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create category: failed to check existing category: %w", err)
	}

	category := domain.NewCategory(name, orderValue, description)
	if err := s.categoryRepo.CreateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: failed to get category %d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, int64, error) {
	categories, totalCount, err := s.categoryRepo.ListCategories(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return categories, totalCount, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, update CategoryUpdate) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: failed to get category %d: %w", id, err)
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.OrderValue != nil {
		category.OrderValue = *update.OrderValue
	}
	if update.Description != nil {
		category.Description = *update.Description
	}

	if err := s.categoryRepo.UpdateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, fmt.Errorf("update category: failed to save category %d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	trashed, err := s.categoryRepo.TrashCategory(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete category: failed to trash category %d: %w", id, err)
	}
	if !trashed {
		return util.ErrCategoryNotFound
	}
	return nil
}
