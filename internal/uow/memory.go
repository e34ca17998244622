package uow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"portfoliotracker/internal/domain"

	"github.com/google/uuid"
)

// MemoryFactory is an in-memory implementation of Factory satisfying the same
// commit/rollback contract as the SQL one. Used as the storage double in
// service tests; each unit of work stages a deep copy of the state and only
// Commit publishes it back.
type MemoryFactory struct {
	mu           sync.Mutex
	portfolios   map[uuid.UUID]*domain.Portfolio
	transactions map[uuid.UUID][]domain.Transaction
}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{
		portfolios:   map[uuid.UUID]*domain.Portfolio{},
		transactions: map[uuid.UUID][]domain.Transaction{},
	}
}

func (f *MemoryFactory) Begin(ctx context.Context) (UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, InitError{Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	staged := &memoryUnitOfWork{
		factory:      f,
		portfolios:   map[uuid.UUID]*domain.Portfolio{},
		transactions: map[uuid.UUID][]domain.Transaction{},
	}
	for id, p := range f.portfolios {
		staged.portfolios[id] = p.DeepCopy()
	}
	for id, txs := range f.transactions {
		staged.transactions[id] = append([]domain.Transaction{}, txs...)
	}
	return staged, nil
}

type memoryUnitOfWork struct {
	factory      *MemoryFactory
	portfolios   map[uuid.UUID]*domain.Portfolio
	transactions map[uuid.UUID][]domain.Transaction
	done         bool
}

func (u *memoryUnitOfWork) Portfolios() PortfolioStore { return u }

func (u *memoryUnitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return CommitError{Err: errors.New("unit of work already closed")}
	}
	if err := ctx.Err(); err != nil {
		return CommitError{Err: err}
	}

	u.factory.mu.Lock()
	defer u.factory.mu.Unlock()
	u.factory.portfolios = u.portfolios
	u.factory.transactions = u.transactions
	u.done = true
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	u.done = true
	return nil
}

func (u *memoryUnitOfWork) Add(_ context.Context, portfolio *domain.Portfolio) error {
	if _, ok := u.portfolios[portfolio.PortfolioID]; ok {
		return fmt.Errorf("portfolio %s already exists", portfolio.PortfolioID)
	}
	u.portfolios[portfolio.PortfolioID] = portfolio.DeepCopy()
	return nil
}

func (u *memoryUnitOfWork) GetByID(_ context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	p, ok := u.portfolios[portfolioID]
	if !ok {
		return nil, ErrPortfolioNotFound
	}
	return p.DeepCopy(), nil
}

func (u *memoryUnitOfWork) GetByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Portfolio, error) {
	out := []*domain.Portfolio{}
	for _, p := range u.portfolios {
		if p.UserID == userID {
			out = append(out, p.DeepCopy())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PortfolioID.String() < out[j].PortfolioID.String()
	})
	return out, nil
}

func (u *memoryUnitOfWork) Update(_ context.Context, portfolio *domain.Portfolio) error {
	if _, ok := u.portfolios[portfolio.PortfolioID]; !ok {
		return ErrPortfolioNotFound
	}
	u.portfolios[portfolio.PortfolioID] = portfolio.DeepCopy()
	return nil
}

func (u *memoryUnitOfWork) Delete(_ context.Context, portfolioID uuid.UUID) error {
	// Transaction records stay behind for audit.
	delete(u.portfolios, portfolioID)
	return nil
}

func (u *memoryUnitOfWork) AddTransaction(_ context.Context, transaction *domain.Transaction) error {
	u.transactions[transaction.PortfolioID] = append(u.transactions[transaction.PortfolioID], *transaction)
	return nil
}

func (u *memoryUnitOfWork) ListTransactions(_ context.Context, portfolioID uuid.UUID) ([]*domain.Transaction, error) {
	stored := u.transactions[portfolioID]
	out := make([]*domain.Transaction, 0, len(stored))
	for i := range stored {
		t := stored[i]
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExecutedAt.Before(out[j].ExecutedAt)
	})
	return out, nil
}
