// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a purchase made by a user, composed of TransactionItems.
type Transaction struct {
	ID          int64           `db:"id" json:"id"`
	UserID      int64           `db:"user_id" json:"user_id"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"` // NUMERIC(20, 4) in DB
	Date        time.Time       `db:"transaction_date" json:"date"`
	Deleted     bool            `db:"deleted" json:"-"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewTransaction creates a new Transaction instance.
func NewTransaction(userID int64, totalAmount decimal.Decimal, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		UserID:      userID,
		TotalAmount: totalAmount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
