// internal/repository/postgres/product_pg.go
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

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct {
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, count, category_id, deleted, created_at, updated_at`

// CreateProduct inserts a new product using the provided DBExecutor.
func (r *ProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	query := `INSERT INTO products (name, count, category_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, product.Name, product.Count, product.CategoryID, product.CreatedAt, product.UpdatedAt).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a non-deleted product by ID.
func (r *ProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetProductByName retrieves a non-deleted product by name.
func (r *ProductRepository) GetProductByName(ctx context.Context, q repository.DBExecutor, name string) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &product, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by name '%s': %w", name, err)
	}
	return &product, nil
}

// ListProducts retrieves a paginated list of non-deleted products and the total count.
func (r *ProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Product, int64, error) {
	products := []domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted = FALSE ORDER BY id LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &products, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM products WHERE deleted = FALSE`
	if err := q.GetContext(ctx, &totalCount, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, totalCount, nil
}

// UpdateProduct persists name and stock count of an existing product.
func (r *ProductRepository) UpdateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	query := `UPDATE products SET name = $1, count = $2, updated_at = $3 WHERE id = $4 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, product.Name, product.Count, time.Now().UTC(), product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating product %d: %w", product.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// TrashProduct soft-deletes a product. Returns false when no live row matched.
func (r *ProductRepository) TrashProduct(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	query := `UPDATE products SET deleted = TRUE, updated_at = $1 WHERE id = $2 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to trash product %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after trashing product %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}
