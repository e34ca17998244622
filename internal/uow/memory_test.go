package uow

import (
	"context"
	"testing"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestMemoryFactory_CommitPublishesState(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()
	portfolio := domain.NewPortfolio(uuid.New(), "retirement", "USD")

	u, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, u.Portfolios().Add(ctx, portfolio))
	require.NoError(t, u.Commit(ctx))

	u2, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer u2.Rollback()

	got, err := u2.Portfolios().GetByID(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	diff := cmp.Diff(portfolio, got, decimalComparer, cmpopts.IgnoreUnexported(domain.Portfolio{}))
	require.Empty(t, diff)
}

func TestMemoryFactory_RollbackDiscardsState(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()
	portfolio := domain.NewPortfolio(uuid.New(), "retirement", "USD")

	u, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, u.Portfolios().Add(ctx, portfolio))
	require.NoError(t, u.Rollback())

	u2, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer u2.Rollback()

	_, err = u2.Portfolios().GetByID(ctx, portfolio.PortfolioID)
	require.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestMemoryFactory_UncommittedWritesAreInvisible(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()
	portfolio := domain.NewPortfolio(uuid.New(), "retirement", "USD")

	writer, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer writer.Rollback()
	require.NoError(t, writer.Portfolios().Add(ctx, portfolio))

	reader, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer reader.Rollback()

	_, err = reader.Portfolios().GetByID(ctx, portfolio.PortfolioID)
	require.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestMemoryFactory_CommitAfterCloseFails(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()

	u, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, u.Rollback())

	err = u.Commit(ctx)
	var commitErr CommitError
	require.ErrorAs(t, err, &commitErr)
}

func TestMemoryFactory_BeginRespectsContext(t *testing.T) {
	factory := NewMemoryFactory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := factory.Begin(ctx)
	var initErr InitError
	require.ErrorAs(t, err, &initErr)
}

func TestMemoryFactory_DeleteKeepsTransactions(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()
	portfolio := domain.NewPortfolio(uuid.New(), "retirement", "USD")

	transaction, err := domain.NewTransaction(
		portfolio.PortfolioID,
		"AAPL",
		domain.TransactionTypeBuy,
		decimal.RequireFromString("10"),
		decimal.RequireFromString("150"),
		decimal.RequireFromString("1500"),
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		"USD",
	)
	require.NoError(t, err)

	u, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, u.Portfolios().Add(ctx, portfolio))
	require.NoError(t, u.Portfolios().AddTransaction(ctx, transaction))
	require.NoError(t, u.Commit(ctx))

	u2, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, u2.Portfolios().Delete(ctx, portfolio.PortfolioID))
	require.NoError(t, u2.Commit(ctx))

	u3, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer u3.Rollback()

	_, err = u3.Portfolios().GetByID(ctx, portfolio.PortfolioID)
	require.ErrorIs(t, err, ErrPortfolioNotFound)

	transactions, err := u3.Portfolios().ListTransactions(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, transaction.TransactionID, transactions[0].TransactionID)
}
