package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/uow"
	"portfoliotracker/pkg/users"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioService orchestrates one unit of work per operation: load, mutate
// in memory through the aggregate, persist, commit. Every path that returns
// early rolls the scope back.
type PortfolioService interface {
	CreatePortfolio(ctx context.Context, in CreatePortfolioInput) (*domain.Portfolio, error)
	GetPortfolio(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error)
	ListUserPortfolios(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error)
	UpdatePortfolio(ctx context.Context, in UpdatePortfolioInput) (*domain.Portfolio, error)
	DeletePortfolio(ctx context.Context, portfolioID uuid.UUID) error
	AddTransaction(ctx context.Context, in AddTransactionInput) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Transaction, error)
}

type portfolioServiceHandler struct {
	UowFactory  uow.Factory
	UsersClient users.Client
}

func NewPortfolioService(uowFactory uow.Factory, usersClient users.Client) PortfolioService {
	return portfolioServiceHandler{
		UowFactory:  uowFactory,
		UsersClient: usersClient,
	}
}

type CreatePortfolioInput struct {
	UserID   uuid.UUID
	Name     string
	Currency string
}

func (h portfolioServiceHandler) CreatePortfolio(ctx context.Context, in CreatePortfolioInput) (*domain.Portfolio, error) {
	// Owner must exist in the user registry before we persist anything.
	if _, err := h.UsersClient.GetByID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("failed to validate portfolio owner: %w", err)
	}

	portfolio := domain.NewPortfolio(in.UserID, in.Name, in.Currency)

	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	if err := u.Portfolios().Add(ctx, portfolio); err != nil {
		return nil, err
	}
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}

	return portfolio, nil
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	return u.Portfolios().GetByID(ctx, portfolioID)
}

func (h portfolioServiceHandler) ListUserPortfolios(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error) {
	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	return u.Portfolios().GetByUserID(ctx, userID)
}

type UpdatePortfolioInput struct {
	PortfolioID uuid.UUID
	Name        string
	Currency    string
}

func (h portfolioServiceHandler) UpdatePortfolio(ctx context.Context, in UpdatePortfolioInput) (*domain.Portfolio, error) {
	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	portfolio, err := u.Portfolios().GetByID(ctx, in.PortfolioID)
	if err != nil {
		return nil, err
	}

	portfolio.Name = strings.TrimSpace(in.Name)
	portfolio.Currency = in.Currency

	if err := u.Portfolios().Update(ctx, portfolio); err != nil {
		return nil, err
	}
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}

	return portfolio, nil
}

func (h portfolioServiceHandler) DeletePortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	if err := u.Portfolios().Delete(ctx, portfolioID); err != nil {
		return err
	}
	return u.Commit(ctx)
}

type AddTransactionInput struct {
	PortfolioID  uuid.UUID
	AssetID      string
	Type         domain.TransactionType
	Quantity     decimal.Decimal
	PricePerUnit decimal.Decimal
	TotalAmount  decimal.Decimal
	ExecutedAt   time.Time
	Currency     string
}

// AddTransaction applies one transaction to one portfolio atomically: the
// updated holdings and the audit record commit together or not at all.
func (h portfolioServiceHandler) AddTransaction(ctx context.Context, in AddTransactionInput) (*domain.Transaction, error) {
	transaction, err := domain.NewTransaction(
		in.PortfolioID,
		in.AssetID,
		in.Type,
		in.Quantity,
		in.PricePerUnit,
		in.TotalAmount,
		in.ExecutedAt,
		in.Currency,
	)
	if err != nil {
		return nil, err
	}

	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	portfolio, err := u.Portfolios().GetByID(ctx, in.PortfolioID)
	if err != nil {
		return nil, err
	}

	if err := portfolio.ApplyTransaction(transaction); err != nil {
		return nil, err
	}

	if err := u.Portfolios().Update(ctx, portfolio); err != nil {
		return nil, err
	}
	if err := u.Portfolios().AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (h portfolioServiceHandler) ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Transaction, error) {
	u, err := h.UowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	// Transactions survive portfolio deletion, so no existence check here.
	return u.Portfolios().ListTransactions(ctx, portfolioID)
}
