// internal/domain/payment.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a durable record of a single balance debit against a user.
// At most one non-deleted Payment exists per user at any time.
type Payment struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"user_id"`
	Reference string          `db:"reference" json:"reference"` // Opaque external identifier
	Amount    decimal.Decimal `db:"amount" json:"amount"`       // NUMERIC(20, 4) in DB, always positive
	Date      time.Time       `db:"payment_date" json:"date"`
	Deleted   bool            `db:"deleted" json:"-"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewPayment creates a new Payment instance with a generated reference.
func NewPayment(userID int64, amount decimal.Decimal, date time.Time) *Payment {
	now := time.Now().UTC()
	return &Payment{
		UserID:    userID,
		Reference: uuid.New().String(),
		Amount:    amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
