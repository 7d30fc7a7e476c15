// internal/domain/product.go
package domain

import "time"

// Product is a catalog item available for purchase.
type Product struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Count      int64     `db:"count" json:"count"` // Units in stock
	CategoryID int64     `db:"category_id" json:"category_id"`
	Deleted    bool      `db:"deleted" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// NewProduct creates a new Product instance.
func NewProduct(name string, count, categoryID int64) *Product {
	now := time.Now().UTC()
	return &Product{
		Name:       name,
		Count:      count,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
