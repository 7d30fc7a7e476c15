// internal/domain/category.go
package domain

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"` // Unique among non-deleted categories
	OrderValue  int64     `db:"order_value" json:"order_value"`
	Description string    `db:"description" json:"description"`
	Deleted     bool      `db:"deleted" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// NewCategory creates a new Category instance.
func NewCategory(name string, orderValue int64, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		Name:        name,
		OrderValue:  orderValue,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
