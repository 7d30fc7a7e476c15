// internal/repository/postgres/category_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct {
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

const categoryColumns = `id, name, order_value, description, deleted, created_at, updated_at`

// CreateCategory inserts a new category using the provided DBExecutor.
func (r *CategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (name, order_value, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, category.Name, category.OrderValue, category.Description, category.CreatedAt, category.UpdatedAt).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a non-deleted category by ID.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// GetCategoryByName retrieves a non-deleted category by name.
func (r *CategoryRepository) GetCategoryByName(ctx context.Context, q repository.DBExecutor, name string) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &category, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by name '%s': %w", name, err)
	}
	return &category, nil
}

// ListCategories retrieves a paginated list of non-deleted categories and the total count.
func (r *CategoryRepository) ListCategories(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Category, int64, error) {
	categories := []domain.Category{}
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE deleted = FALSE ORDER BY order_value, id LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &categories, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM categories WHERE deleted = FALSE`
	if err := q.GetContext(ctx, &totalCount, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return categories, totalCount, nil
}

// UpdateCategory persists name, order value and description of an existing category.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `UPDATE categories SET name = $1, order_value = $2, description = $3, updated_at = $4
              WHERE id = $5 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, category.Name, category.OrderValue, category.Description, time.Now().UTC(), category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating category %d: %w", category.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// TrashCategory soft-deletes a category. Returns false when no live row matched.
func (r *CategoryRepository) TrashCategory(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	query := `UPDATE categories SET deleted = TRUE, updated_at = $1 WHERE id = $2 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to trash category %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after trashing category %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}
