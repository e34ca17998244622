package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	return NewPortfolio(uuid.New(), "retirement", "USD")
}

func mustTransaction(t *testing.T, portfolioID uuid.UUID, assetID string, transactionType TransactionType, quantity, price string) *Transaction {
	t.Helper()
	q := decimal.RequireFromString(quantity)
	p := decimal.RequireFromString(price)
	transaction, err := NewTransaction(
		portfolioID,
		assetID,
		transactionType,
		q,
		p,
		q.Mul(p),
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		"USD",
	)
	require.NoError(t, err)
	return transaction
}

func TestApplyTransaction_Buy(t *testing.T) {
	t.Run("first buy creates the holding at the purchase price", func(t *testing.T) {
		portfolio := newTestPortfolio(t)

		err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150.50"))
		require.NoError(t, err)

		holding, ok := portfolio.Holding("AAPL")
		require.True(t, ok)
		require.True(t, holding.Quantity.Equal(decimal.RequireFromString("10")))
		require.True(t, holding.AverageCost.Equal(decimal.RequireFromString("150.50")))
	})

	t.Run("subsequent buys recompute the weighted average cost", func(t *testing.T) {
		portfolio := newTestPortfolio(t)

		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "280.2", "281.43")))
		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "100", "300")))

		holding, ok := portfolio.Holding("AAPL")
		require.True(t, ok)
		require.True(t, holding.Quantity.Equal(decimal.RequireFromString("380.2")))

		expectedAvg := decimal.RequireFromString("280.2").Mul(decimal.RequireFromString("281.43")).
			Add(decimal.RequireFromString("100").Mul(decimal.RequireFromString("300"))).
			Div(decimal.RequireFromString("380.2"))
		require.True(t, holding.AverageCost.Equal(expectedAvg), "expected %s, got %s", expectedAvg, holding.AverageCost)
	})

	t.Run("buys in different assets stay independent", func(t *testing.T) {
		portfolio := newTestPortfolio(t)

		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")))
		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "MSFT", TransactionTypeBuy, "5", "400")))

		require.Len(t, portfolio.Holdings(), 2)
		aapl, _ := portfolio.Holding("AAPL")
		require.True(t, aapl.AverageCost.Equal(decimal.RequireFromString("150")))
	})
}

func TestApplyTransaction_Sell(t *testing.T) {
	t.Run("partial sell reduces quantity and keeps average cost", func(t *testing.T) {
		portfolio := newTestPortfolio(t)
		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")))

		err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeSell, "4", "200"))
		require.NoError(t, err)

		holding, ok := portfolio.Holding("AAPL")
		require.True(t, ok)
		require.True(t, holding.Quantity.Equal(decimal.RequireFromString("6")))
		require.True(t, holding.AverageCost.Equal(decimal.RequireFromString("150")))
	})

	t.Run("selling the full position removes the holding", func(t *testing.T) {
		portfolio := newTestPortfolio(t)
		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")))

		err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeSell, "10", "200"))
		require.NoError(t, err)

		_, ok := portfolio.Holding("AAPL")
		require.False(t, ok)
		require.Empty(t, portfolio.Holdings())
	})

	t.Run("overselling fails and leaves the portfolio unchanged", func(t *testing.T) {
		portfolio := newTestPortfolio(t)
		require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "280.2", "281.43")))

		err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeSell, "300", "200"))

		var insufficientErr InsufficientHoldingsError
		require.ErrorAs(t, err, &insufficientErr)
		require.Equal(t, "AAPL", insufficientErr.AssetID)
		require.True(t, insufficientErr.Requested.Equal(decimal.RequireFromString("300")))
		require.True(t, insufficientErr.Available.Equal(decimal.RequireFromString("280.2")))

		holding, ok := portfolio.Holding("AAPL")
		require.True(t, ok)
		require.True(t, holding.Quantity.Equal(decimal.RequireFromString("280.2")))
	})

	t.Run("selling an asset that is not held reports zero available", func(t *testing.T) {
		portfolio := newTestPortfolio(t)

		err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "TSLA", TransactionTypeSell, "1", "200"))

		var insufficientErr InsufficientHoldingsError
		require.ErrorAs(t, err, &insufficientErr)
		require.True(t, insufficientErr.Available.IsZero())
	})
}

func TestApplyTransaction_Dividend(t *testing.T) {
	portfolio := newTestPortfolio(t)
	require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")))

	err := portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeDividend, "10", "0.24"))
	require.NoError(t, err)

	holding, ok := portfolio.Holding("AAPL")
	require.True(t, ok)
	require.True(t, holding.Quantity.Equal(decimal.RequireFromString("10")))
	require.True(t, holding.AverageCost.Equal(decimal.RequireFromString("150")))
}

func TestApplyTransaction_Mismatch(t *testing.T) {
	portfolio := newTestPortfolio(t)
	other := newTestPortfolio(t)

	transaction := mustTransaction(t, other.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")
	err := portfolio.ApplyTransaction(transaction)

	var mismatchErr TransactionMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	require.Equal(t, transaction.PortfolioID, mismatchErr.TransactionPortfolioID)
	require.Equal(t, portfolio.PortfolioID, mismatchErr.PortfolioID)
	require.Empty(t, portfolio.Holdings())
}

func TestApplyTransaction_UnknownType(t *testing.T) {
	portfolio := newTestPortfolio(t)

	transaction := mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")
	transaction.Type = TransactionType("TRANSFER")

	err := portfolio.ApplyTransaction(transaction)

	var opErr InvalidPortfolioOperationError
	require.ErrorAs(t, err, &opErr)
}

func TestNewTransaction_Validation(t *testing.T) {
	portfolioID := uuid.New()
	executedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		quantity     string
		pricePerUnit string
		totalAmount  string
		wantErr      bool
	}{
		{name: "valid", quantity: "1", pricePerUnit: "100", totalAmount: "100"},
		{name: "zero price is allowed", quantity: "1", pricePerUnit: "0", totalAmount: "0"},
		{name: "zero quantity", quantity: "0", pricePerUnit: "100", totalAmount: "0", wantErr: true},
		{name: "negative quantity", quantity: "-1", pricePerUnit: "100", totalAmount: "100", wantErr: true},
		{name: "negative price", quantity: "1", pricePerUnit: "-100", totalAmount: "100", wantErr: true},
		{name: "negative total", quantity: "1", pricePerUnit: "100", totalAmount: "-100", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(
				portfolioID,
				"AAPL",
				TransactionTypeBuy,
				decimal.RequireFromString(tc.quantity),
				decimal.RequireFromString(tc.pricePerUnit),
				decimal.RequireFromString(tc.totalAmount),
				executedAt,
				"USD",
			)
			if tc.wantErr {
				var dataErr InvalidTransactionDataError
				require.True(t, errors.As(err, &dataErr), "expected InvalidTransactionDataError, got %v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRehydratePortfolio(t *testing.T) {
	t.Run("rebuilds holdings from persisted rows", func(t *testing.T) {
		portfolioID := uuid.New()
		portfolio, err := RehydratePortfolio(portfolioID, uuid.New(), "retirement", "USD", time.Now().UTC(), []Holding{
			{AssetID: "AAPL", Quantity: decimal.RequireFromString("10"), AverageCost: decimal.RequireFromString("150")},
			{AssetID: "MSFT", Quantity: decimal.RequireFromString("5"), AverageCost: decimal.RequireFromString("400")},
		})
		require.NoError(t, err)
		require.Equal(t, portfolioID, portfolio.PortfolioID)
		require.Len(t, portfolio.Holdings(), 2)
	})

	t.Run("rejects duplicate holdings for one asset", func(t *testing.T) {
		_, err := RehydratePortfolio(uuid.New(), uuid.New(), "retirement", "USD", time.Now().UTC(), []Holding{
			{AssetID: "AAPL", Quantity: decimal.RequireFromString("10"), AverageCost: decimal.RequireFromString("150")},
			{AssetID: "AAPL", Quantity: decimal.RequireFromString("1"), AverageCost: decimal.RequireFromString("150")},
		})
		var opErr InvalidPortfolioOperationError
		require.ErrorAs(t, err, &opErr)
	})

	t.Run("rejects negative persisted quantities", func(t *testing.T) {
		_, err := RehydratePortfolio(uuid.New(), uuid.New(), "retirement", "USD", time.Now().UTC(), []Holding{
			{AssetID: "AAPL", Quantity: decimal.RequireFromString("-1"), AverageCost: decimal.RequireFromString("150")},
		})
		var dataErr InvalidTransactionDataError
		require.ErrorAs(t, err, &dataErr)
	})
}

func TestDeepCopy(t *testing.T) {
	portfolio := newTestPortfolio(t)
	require.NoError(t, portfolio.ApplyTransaction(mustTransaction(t, portfolio.PortfolioID, "AAPL", TransactionTypeBuy, "10", "150")))

	copied := portfolio.DeepCopy()
	require.NoError(t, copied.ApplyTransaction(mustTransaction(t, copied.PortfolioID, "AAPL", TransactionTypeSell, "10", "200")))

	original, ok := portfolio.Holding("AAPL")
	require.True(t, ok)
	require.True(t, original.Quantity.Equal(decimal.RequireFromString("10")))
	_, ok = copied.Holding("AAPL")
	require.False(t, ok)
}
