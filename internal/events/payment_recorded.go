// internal/events/payment_recorded.go
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecorded is emitted after a payment has been committed
// and the user's balance debited.
type PaymentRecorded struct {
	PaymentID  int64           `json:"payment_id"`
	UserID     int64           `json:"user_id"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}
