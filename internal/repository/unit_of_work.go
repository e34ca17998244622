package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/uow"

	"github.com/google/uuid"
)

type unitOfWorkFactory struct {
	db           *sql.DB
	portfolios   PortfolioRepository
	transactions TransactionRepository
}

// NewUnitOfWorkFactory returns a uow.Factory whose units of work run on a
// serializable database transaction. Serializable isolation is what protects
// two concurrent scopes loading and updating the same portfolio from losing
// an update; the aggregate carries no version column.
func NewUnitOfWorkFactory(db *sql.DB, portfolios PortfolioRepository, transactions TransactionRepository) uow.Factory {
	return unitOfWorkFactory{
		db:           db,
		portfolios:   portfolios,
		transactions: transactions,
	}
}

func (f unitOfWorkFactory) Begin(ctx context.Context) (uow.UnitOfWork, error) {
	// BeginTx ties the transaction to ctx: if ctx is canceled before Commit,
	// database/sql rolls the whole transaction back, so a canceled request
	// never leaves a half-committed scope behind.
	tx, err := f.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, uow.InitError{Err: err}
	}

	return &sqlUnitOfWork{
		tx: tx,
		store: sqlPortfolioStore{
			tx:           tx,
			portfolios:   f.portfolios,
			transactions: f.transactions,
		},
	}, nil
}

type sqlUnitOfWork struct {
	tx    *sql.Tx
	store sqlPortfolioStore
	done  bool
}

func (u *sqlUnitOfWork) Portfolios() uow.PortfolioStore { return u.store }

func (u *sqlUnitOfWork) Commit(_ context.Context) error {
	if u.done {
		return uow.CommitError{Err: errors.New("unit of work already closed")}
	}
	if err := u.tx.Commit(); err != nil {
		return uow.CommitError{Err: err}
	}
	u.done = true
	return nil
}

func (u *sqlUnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back unit of work: %w", err)
	}
	return nil
}

// sqlPortfolioStore binds the tx-aware repositories to one transaction so
// callers never commit a repository call independently.
type sqlPortfolioStore struct {
	tx           *sql.Tx
	portfolios   PortfolioRepository
	transactions TransactionRepository
}

func (s sqlPortfolioStore) Add(ctx context.Context, portfolio *domain.Portfolio) error {
	return s.portfolios.Add(ctx, s.tx, portfolio)
}

func (s sqlPortfolioStore) GetByID(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	return s.portfolios.GetByID(ctx, s.tx, portfolioID)
}

func (s sqlPortfolioStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error) {
	return s.portfolios.GetByUserID(ctx, s.tx, userID)
}

func (s sqlPortfolioStore) Update(ctx context.Context, portfolio *domain.Portfolio) error {
	return s.portfolios.Update(ctx, s.tx, portfolio)
}

func (s sqlPortfolioStore) Delete(ctx context.Context, portfolioID uuid.UUID) error {
	return s.portfolios.Delete(ctx, s.tx, portfolioID)
}

func (s sqlPortfolioStore) AddTransaction(ctx context.Context, transaction *domain.Transaction) error {
	return s.transactions.Add(ctx, s.tx, transaction)
}

func (s sqlPortfolioStore) ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Transaction, error) {
	return s.transactions.List(ctx, s.tx, portfolioID)
}
