// Package uow defines the unit-of-work boundary: a group of portfolio
// repository operations that commit or roll back together. Implementations
// live next to their storage (SQL in internal/repository, in-memory below).
package uow

import (
	"context"
	"errors"
	"fmt"

	"portfoliotracker/internal/domain"

	"github.com/google/uuid"
)

// ErrPortfolioNotFound is the not-found sentinel for PortfolioStore reads.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// PortfolioStore is the repository contract, bound to the transaction scope
// of the UnitOfWork that exposed it. Nothing done through it is durable until
// the unit of work commits.
type PortfolioStore interface {
	Add(ctx context.Context, portfolio *domain.Portfolio) error
	GetByID(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error)
	// Update overwrites name/currency and replaces the entire holding set.
	Update(ctx context.Context, portfolio *domain.Portfolio) error
	// Delete removes the portfolio and its holdings. Transaction records are
	// kept for audit.
	Delete(ctx context.Context, portfolioID uuid.UUID) error
	AddTransaction(ctx context.Context, transaction *domain.Transaction) error
	ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Transaction, error)
}

type UnitOfWork interface {
	Portfolios() PortfolioStore
	// Commit durably applies everything done through Portfolios() since
	// Begin. Fails with CommitError; afterwards no partial effects are
	// visible either way.
	Commit(ctx context.Context) error
	// Rollback discards all uncommitted operations. Safe to defer: it is a
	// no-op once Commit succeeded, and idempotent.
	Rollback() error
}

// Factory creates one unit of work per request/operation, replacing the
// process-wide shared instance the system once had.
type Factory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// InitError wraps a failure to acquire the underlying transaction scope.
type InitError struct {
	Err error
}

func (e InitError) Error() string {
	return fmt.Sprintf("failed to open unit of work: %v", e.Err)
}

func (e InitError) Unwrap() error { return e.Err }

// CommitError wraps a rejected commit. The caller must treat the whole
// operation as not applied.
type CommitError struct {
	Err error
}

func (e CommitError) Error() string {
	return fmt.Sprintf("failed to commit unit of work: %v", e.Err)
}

func (e CommitError) Unwrap() error { return e.Err }
