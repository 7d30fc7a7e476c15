// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account holder with a spendable balance.
type User struct {
	ID        int64           `db:"id" json:"id"`
	Fullname  string          `db:"fullname" json:"fullname"`
	Username  string          `db:"username" json:"username"` // Unique among non-deleted users
	Balance   decimal.Decimal `db:"balance" json:"balance"`   // NUMERIC(20, 4) in DB, never negative
	Deleted   bool            `db:"deleted" json:"-"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance.
func NewUser(fullname, username string, balance decimal.Decimal) *User {
	now := time.Now().UTC()
	return &User{
		Fullname:  fullname,
		Username:  username,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
