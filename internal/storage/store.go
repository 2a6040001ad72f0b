// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/Guilherme-dev15/finance-app/internal/models"
)

// Store defines the interface for debt and user persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Every debt lookup is scoped by the owner's user ID: a debt belonging to
// another user is indistinguishable from a nonexistent one. Methods that
// address a single debt return (nil, nil) when no record matches the
// (debtID, userID) pair; errors are reserved for infrastructure failures.
type Store interface {
	// CreateDebt persists a new debt. ID and CreatedAt are populated by
	// the store when unset.
	CreateDebt(ctx context.Context, debt *models.Debt) error

	// GetDebt retrieves one debt scoped by owner.
	GetDebt(ctx context.Context, userID, debtID string) (*models.Debt, error)

	// ListDebts returns all debts owned by userID, optionally filtered by
	// exact status match (empty status means no filter). No pagination.
	ListDebts(ctx context.Context, userID string, status models.DebtStatus) ([]*models.Debt, error)

	// ListDebtsDueBetween returns the user's debts with a due date inside
	// [start, end] inclusive.
	ListDebtsDueBetween(ctx context.Context, userID string, start, end time.Time) ([]*models.Debt, error)

	// UpdateDebt replaces the mutable fields of a debt in a single
	// conditional update scoped to (debt.ID, debt.UserID). Returns the
	// updated record, or nil when no record matched.
	UpdateDebt(ctx context.Context, debt *models.Debt) (*models.Debt, error)

	// ApplyPayment atomically subtracts amount from the debt's current
	// balance, clamping at 0 and flipping the status to PAID when the
	// balance is cleared. The decrement happens in the database so two
	// concurrent payments can never both read the same pre-payment
	// balance. Returns the updated record, or nil when no record matched.
	ApplyPayment(ctx context.Context, userID, debtID string, amount float64) (*models.Debt, error)

	// DeleteDebt removes the debt scoped by owner. Returns false when no
	// record matched.
	DeleteDebt(ctx context.Context, userID, debtID string) (bool, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or (nil, nil) when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
