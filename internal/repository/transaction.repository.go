package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TransactionRepository persists the immutable audit records. Rows are only
// ever inserted and read; they outlive the portfolio they reference.
type TransactionRepository interface {
	Add(ctx context.Context, tx *sql.Tx, transaction *domain.Transaction) error
	List(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) ([]*domain.Transaction, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, transaction *domain.Transaction) error {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Transactions.
		INSERT(table.Transactions.AllColumns).
		MODEL(model.Transactions{
			ID:              transaction.TransactionID,
			PortfolioID:     transaction.PortfolioID,
			AssetID:         transaction.AssetID,
			TransactionType: string(transaction.Type),
			Quantity:        transaction.Quantity,
			PricePerUnit:    transaction.PricePerUnit,
			TotalAmount:     transaction.TotalAmount,
			ExecutedAt:      transaction.ExecutedAt,
			Currency:        transaction.Currency,
		})

	if _, err := query.ExecContext(ctx, db); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (h transactionRepositoryHandler) List(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) ([]*domain.Transaction, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Transactions.
		SELECT(table.Transactions.AllColumns).
		WHERE(table.Transactions.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.Transactions.ExecutedAt.ASC())

	rows := []model.Transactions{}
	if err := query.QueryContext(ctx, db, &rows); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Transaction{
			TransactionID: row.ID,
			PortfolioID:   row.PortfolioID,
			AssetID:       row.AssetID,
			Type:          domain.TransactionType(row.TransactionType),
			Quantity:      row.Quantity,
			PricePerUnit:  row.PricePerUnit,
			TotalAmount:   row.TotalAmount,
			ExecutedAt:    row.ExecutedAt,
			Currency:      row.Currency,
		})
	}
	return out, nil
}
