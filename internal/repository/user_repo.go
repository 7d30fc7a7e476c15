// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"paycart/internal/domain"
)

// UserRepository defines the interface for user data operations.
// All reads see non-deleted rows only; Trash marks a row deleted in place.
type UserRepository interface {
	// CreateUser adds a new user using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a non-deleted user by ID.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByIDForUpdate retrieves a non-deleted user by ID and locks the
	// row for the remainder of the surrounding transaction.
	GetUserByIDForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByUsername retrieves a non-deleted user by username.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// GetUserByUsernameNotID retrieves a non-deleted user holding the given
	// username with a different ID. Used for uniqueness checks on update.
	GetUserByUsernameNotID(ctx context.Context, q DBExecutor, id int64, username string) (*domain.User, error)
	// ListUsers retrieves a page of non-deleted users plus the total count.
	ListUsers(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.User, int64, error)
	// UpdateUser persists fullname, username and balance of an existing user.
	UpdateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// AddToUserBalance applies a signed delta to the user's balance.
	AddToUserBalance(ctx context.Context, q DBExecutor, userID int64, delta decimal.Decimal) error
	// TrashUser soft-deletes a user. Returns false when no live row matched.
	TrashUser(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
