package store

import (
	"context"
	"errors"

	"github.com/outlay-labs/outlay/internal/expense/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Expenses() Expenses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (e.g., uniqueness checks followed by an insert).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Unique-constraint violations surface as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and token resolution.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used for the signup uniqueness check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Expenses interface {
	// CreateExpense inserts a new expense (id is provided by the app).
	CreateExpense(ctx context.Context, e domain.Expense) error

	// GetExpenseByID returns an expense by id alone, regardless of owner.
	GetExpenseByID(ctx context.Context, id string) (domain.Expense, error)

	// ListExpensesByOwner returns the owner's expenses matching the filter,
	// in natural storage order. Callers must not assume chronological order.
	ListExpensesByOwner(ctx context.Context, ownerID string, f domain.ExpenseFilter) ([]domain.Expense, error)

	// UpdateExpense overwrites amount/category/description/date by id.
	UpdateExpense(ctx context.Context, e domain.Expense) error

	// DeleteExpense removes the row by id. ErrNotFound if nothing matched.
	DeleteExpense(ctx context.Context, id string) error
}
