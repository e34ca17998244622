package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvalidTransactionDataError rejects construction of a Holding or
// Transaction whose numbers violate the ledger rules.
type InvalidTransactionDataError struct {
	Reason string
}

func (e InvalidTransactionDataError) Error() string {
	return fmt.Sprintf("invalid transaction data: %s", e.Reason)
}

// TransactionMismatchError means a transaction was applied to a portfolio
// it does not belong to.
type TransactionMismatchError struct {
	TransactionID          uuid.UUID
	TransactionPortfolioID uuid.UUID
	PortfolioID            uuid.UUID
}

func (e TransactionMismatchError) Error() string {
	return fmt.Sprintf(
		"transaction %s belongs to portfolio %s but was applied to portfolio %s",
		e.TransactionID, e.TransactionPortfolioID, e.PortfolioID,
	)
}

// InsufficientHoldingsError means a sell asked for more units than the
// portfolio holds. Available is zero when the asset is not held at all.
type InsufficientHoldingsError struct {
	AssetID   string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientHoldingsError) Error() string {
	return fmt.Sprintf(
		"insufficient holdings of %s: requested %s, available %s",
		e.AssetID, e.Requested, e.Available,
	)
}

type InvalidPortfolioOperationError struct {
	Reason string
}

func (e InvalidPortfolioOperationError) Error() string {
	return fmt.Sprintf("invalid portfolio operation: %s", e.Reason)
}
