// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
	"paycart/pkg/db"
)

// UserUpdate carries the partial update for a user. Nil fields are left unchanged.
type UserUpdate struct {
	Fullname *string
	Username *string
	Balance  *decimal.Decimal
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	CreateUser(ctx context.Context, fullname, username string, balance decimal.Decimal) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userService implements the UserService interface.
type userService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) UserService {
	return &userService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// CreateUser registers a new user with an opening balance.
func (s *userService) CreateUser(ctx context.Context, fullname, username string, balance decimal.Decimal) (*domain.User, error) {
	if fullname == "" || username == "" || balance.IsNegative() {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create user: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create user: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByUsername(ctx, txExecutor, username)
	if err == nil {
		return nil, util.ErrUserAlreadyExists
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create user: failed to check existing user: %w", err)
	}

	user := domain.NewUser(fullname, username, balance)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create user: failed to commit transaction: %w", err)
	}

	return user, nil
}

// GetUser retrieves a single non-deleted user.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: failed to get user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers retrieves a paginated list of non-deleted users.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	users, totalCount, err := s.userRepo.ListUsers(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, totalCount, nil
}

// UpdateUser applies a partial update. A username change re-checks
// uniqueness against the other live rows.
func (s *userService) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*domain.User, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update user: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update user: transaction controller does not implement DBExecutor")
	}

	user, err := s.userRepo.GetUserByIDForUpdate(ctx, txExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: failed to get user %d: %w", id, err)
	}

	if update.Fullname != nil {
		user.Fullname = *update.Fullname
	}
	if update.Username != nil {
		_, err := s.userRepo.GetUserByUsernameNotID(ctx, txExecutor, id, *update.Username)
		if err == nil {
			return nil, util.ErrUserAlreadyExists
		}
		if !util.IsError(err, util.ErrNotFound) {
			return nil, fmt.Errorf("update user: failed to check username: %w", err)
		}
		user.Username = *update.Username
	}
	if update.Balance != nil {
		if update.Balance.IsNegative() {
			return nil, util.ErrInvalidInput
		}
		user.Balance = *update.Balance
	}

	if err := s.userRepo.UpdateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("update user: failed to save user %d: %w", id, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update user: failed to commit transaction: %w", err)
	}

	return user, nil
}

// DeleteUser soft-deletes a user. Payments and transactions are untouched.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	trashed, err := s.userRepo.TrashUser(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete user: failed to trash user %d: %w", id, err)
	}
	if !trashed {
		return util.ErrUserNotFound
	}
	return nil
}
