// internal/domain/transaction_item.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem is a single product line within a Transaction.
type TransactionItem struct {
	ID            int64           `db:"id" json:"id"`
	ProductID     int64           `db:"product_id" json:"product_id"`
	TransactionID int64           `db:"transaction_id" json:"transaction_id"`
	Count         int64           `db:"count" json:"count"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`             // Unit price
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"` // Price for the whole line
	Deleted       bool            `db:"deleted" json:"-"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// NewTransactionItem creates a new TransactionItem instance.
func NewTransactionItem(productID, transactionID, count int64, amount, totalAmount decimal.Decimal) *TransactionItem {
	now := time.Now().UTC()
	return &TransactionItem{
		ProductID:     productID,
		TransactionID: transactionID,
		Count:         count,
		Amount:        amount,
		TotalAmount:   totalAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
