package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/uow"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Add(ctx context.Context, tx *sql.Tx, portfolio *domain.Portfolio) error
	GetByID(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) (*domain.Portfolio, error)
	GetByUserID(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]*domain.Portfolio, error)
	Update(ctx context.Context, tx *sql.Tx, portfolio *domain.Portfolio) error
	Delete(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) error
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, portfolio *domain.Portfolio) error {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Portfolios.
		INSERT(table.Portfolios.AllColumns).
		MODEL(portfolioModelFromDomain(portfolio))

	if _, err := query.ExecContext(ctx, db); err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return insertHoldings(ctx, db, portfolio)
}

func (h portfolioRepositoryHandler) GetByID(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Portfolios.
		SELECT(table.Portfolios.AllColumns).
		WHERE(table.Portfolios.ID.EQ(postgres.UUID(portfolioID)))

	row := model.Portfolios{}
	err := query.QueryContext(ctx, db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, uow.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	holdingRows := []model.Holdings{}
	holdingsQuery := table.Holdings.
		SELECT(table.Holdings.AllColumns).
		WHERE(table.Holdings.PortfolioID.EQ(postgres.UUID(portfolioID)))
	if err := holdingsQuery.QueryContext(ctx, db, &holdingRows); err != nil {
		return nil, fmt.Errorf("failed to get portfolio holdings: %w", err)
	}

	return portfolioFromModels(row, holdingRows)
}

func (h portfolioRepositoryHandler) GetByUserID(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]*domain.Portfolio, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Portfolios.
		SELECT(table.Portfolios.AllColumns).
		WHERE(table.Portfolios.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Portfolios.CreatedAt.ASC())

	rows := []model.Portfolios{}
	if err := query.QueryContext(ctx, db, &rows); err != nil {
		return nil, fmt.Errorf("failed to list portfolios for user %s: %w", userID, err)
	}
	if len(rows) == 0 {
		return []*domain.Portfolio{}, nil
	}

	portfolioIDs := []postgres.Expression{}
	for _, row := range rows {
		portfolioIDs = append(portfolioIDs, postgres.UUID(row.ID))
	}
	holdingRows := []model.Holdings{}
	holdingsQuery := table.Holdings.
		SELECT(table.Holdings.AllColumns).
		WHERE(table.Holdings.PortfolioID.IN(portfolioIDs...))
	if err := holdingsQuery.QueryContext(ctx, db, &holdingRows); err != nil {
		return nil, fmt.Errorf("failed to list holdings for user %s: %w", userID, err)
	}

	holdingsByPortfolio := map[uuid.UUID][]model.Holdings{}
	for _, row := range holdingRows {
		holdingsByPortfolio[row.PortfolioID] = append(holdingsByPortfolio[row.PortfolioID], row)
	}

	out := []*domain.Portfolio{}
	for _, row := range rows {
		portfolio, err := portfolioFromModels(row, holdingsByPortfolio[row.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, portfolio)
	}
	return out, nil
}

// Update overwrites name/currency and replaces the whole holding set rather
// than diffing it against the stored rows.
func (h portfolioRepositoryHandler) Update(ctx context.Context, tx *sql.Tx, portfolio *domain.Portfolio) error {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Portfolios.
		UPDATE(table.Portfolios.Name, table.Portfolios.Currency).
		MODEL(portfolioModelFromDomain(portfolio)).
		WHERE(table.Portfolios.ID.EQ(postgres.UUID(portfolio.PortfolioID)))

	result, err := query.ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}
	if affected == 0 {
		return uow.ErrPortfolioNotFound
	}

	deleteQuery := table.Holdings.
		DELETE().
		WHERE(table.Holdings.PortfolioID.EQ(postgres.UUID(portfolio.PortfolioID)))
	if _, err := deleteQuery.ExecContext(ctx, db); err != nil {
		return fmt.Errorf("failed to clear portfolio holdings: %w", err)
	}

	return insertHoldings(ctx, db, portfolio)
}

// Delete removes the portfolio and its holdings. Transaction records are left
// in place as the audit trail.
func (h portfolioRepositoryHandler) Delete(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) error {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	deleteHoldings := table.Holdings.
		DELETE().
		WHERE(table.Holdings.PortfolioID.EQ(postgres.UUID(portfolioID)))
	if _, err := deleteHoldings.ExecContext(ctx, db); err != nil {
		return fmt.Errorf("failed to delete portfolio holdings: %w", err)
	}

	deletePortfolio := table.Portfolios.
		DELETE().
		WHERE(table.Portfolios.ID.EQ(postgres.UUID(portfolioID)))
	result, err := deletePortfolio.ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if affected == 0 {
		return uow.ErrPortfolioNotFound
	}
	return nil
}

func insertHoldings(ctx context.Context, db qrm.DB, portfolio *domain.Portfolio) error {
	holdings := portfolio.Holdings()
	if len(holdings) == 0 {
		return nil
	}

	rows := make([]model.Holdings, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, model.Holdings{
			ID:          uuid.New(),
			PortfolioID: portfolio.PortfolioID,
			AssetID:     h.AssetID,
			Quantity:    h.Quantity,
			AverageCost: h.AverageCost,
		})
	}

	query := table.Holdings.INSERT(table.Holdings.AllColumns).MODELS(rows)
	if _, err := query.ExecContext(ctx, db); err != nil {
		return fmt.Errorf("failed to insert holdings: %w", err)
	}
	return nil
}

func portfolioModelFromDomain(portfolio *domain.Portfolio) model.Portfolios {
	return model.Portfolios{
		ID:        portfolio.PortfolioID,
		UserID:    portfolio.UserID,
		Name:      portfolio.Name,
		Currency:  portfolio.Currency,
		CreatedAt: portfolio.CreatedAt,
	}
}

func portfolioFromModels(row model.Portfolios, holdingRows []model.Holdings) (*domain.Portfolio, error) {
	holdings := make([]domain.Holding, 0, len(holdingRows))
	for _, h := range holdingRows {
		holdings = append(holdings, domain.Holding{
			AssetID:     h.AssetID,
			Quantity:    h.Quantity,
			AverageCost: h.AverageCost,
		})
	}

	portfolio, err := domain.RehydratePortfolio(row.ID, row.UserID, row.Name, row.Currency, row.CreatedAt, holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate portfolio %s: %w", row.ID, err)
	}
	return portfolio, nil
}
