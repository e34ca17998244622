package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeBuy      TransactionType = "BUY"
	TransactionTypeSell     TransactionType = "SELL"
	TransactionTypeDividend TransactionType = "DIVIDEND"
)

// Holding is an accumulated position in one asset, averaged across every buy
// that produced it. Holdings live inside a Portfolio and are only mutated
// through Portfolio.ApplyTransaction.
type Holding struct {
	AssetID     string
	Quantity    decimal.Decimal
	AverageCost decimal.Decimal
}

func NewHolding(assetID string, quantity, averageCost decimal.Decimal) (*Holding, error) {
	if quantity.IsNegative() {
		return nil, InvalidTransactionDataError{Reason: "holding quantity cannot be negative"}
	}
	if averageCost.IsNegative() {
		return nil, InvalidTransactionDataError{Reason: "holding average cost cannot be negative"}
	}
	return &Holding{
		AssetID:     assetID,
		Quantity:    quantity,
		AverageCost: averageCost,
	}, nil
}

// Transaction is an immutable, timestamped fact: one executed operation
// against one portfolio. It is a command for the aggregate, not part of it;
// after application it is persisted separately as an audit record.
type Transaction struct {
	TransactionID uuid.UUID
	PortfolioID   uuid.UUID
	AssetID       string
	Type          TransactionType
	Quantity      decimal.Decimal
	PricePerUnit  decimal.Decimal
	TotalAmount   decimal.Decimal
	ExecutedAt    time.Time
	Currency      string
}

// NewTransaction validates everything up front. Invalid data never enters
// the system half-formed.
func NewTransaction(
	portfolioID uuid.UUID,
	assetID string,
	transactionType TransactionType,
	quantity decimal.Decimal,
	pricePerUnit decimal.Decimal,
	totalAmount decimal.Decimal,
	executedAt time.Time,
	currency string,
) (*Transaction, error) {
	if !quantity.IsPositive() {
		return nil, InvalidTransactionDataError{Reason: "transaction quantity must be positive"}
	}
	if pricePerUnit.IsNegative() {
		return nil, InvalidTransactionDataError{Reason: "price per unit cannot be negative"}
	}
	if totalAmount.IsNegative() {
		return nil, InvalidTransactionDataError{Reason: "total amount cannot be negative"}
	}

	return &Transaction{
		TransactionID: uuid.New(),
		PortfolioID:   portfolioID,
		AssetID:       assetID,
		Type:          transactionType,
		Quantity:      quantity,
		PricePerUnit:  pricePerUnit,
		TotalAmount:   totalAmount,
		ExecutedAt:    executedAt,
		Currency:      currency,
	}, nil
}

// Portfolio is the aggregate root. All holding mutations go through
// ApplyTransaction; the holdings map is unexported so callers cannot reach
// around the business rules.
type Portfolio struct {
	PortfolioID uuid.UUID
	UserID      uuid.UUID
	Name        string
	Currency    string
	CreatedAt   time.Time

	holdings map[string]*Holding
}

func NewPortfolio(userID uuid.UUID, name, currency string) *Portfolio {
	return &Portfolio{
		PortfolioID: uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Currency:    currency,
		CreatedAt:   time.Now().UTC(),
		holdings:    map[string]*Holding{},
	}
}

// RehydratePortfolio rebuilds an aggregate from persisted state. Each holding
// is re-validated and at most one holding per asset is allowed.
func RehydratePortfolio(
	portfolioID uuid.UUID,
	userID uuid.UUID,
	name string,
	currency string,
	createdAt time.Time,
	holdings []Holding,
) (*Portfolio, error) {
	p := &Portfolio{
		PortfolioID: portfolioID,
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Currency:    currency,
		CreatedAt:   createdAt,
		holdings:    map[string]*Holding{},
	}
	for _, h := range holdings {
		if _, ok := p.holdings[h.AssetID]; ok {
			return nil, InvalidPortfolioOperationError{
				Reason: "portfolio has more than one holding for asset " + h.AssetID,
			}
		}
		validated, err := NewHolding(h.AssetID, h.Quantity, h.AverageCost)
		if err != nil {
			return nil, err
		}
		p.holdings[h.AssetID] = validated
	}
	return p, nil
}

// Holding returns a copy of the position for the asset, if held.
func (p *Portfolio) Holding(assetID string) (Holding, bool) {
	h, ok := p.holdings[assetID]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings returns copies of all positions, ordered by asset id.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssetID < out[j].AssetID
	})
	return out
}

func (p *Portfolio) DeepCopy() *Portfolio {
	holdings := map[string]*Holding{}
	for assetID, h := range p.holdings {
		copied := *h
		holdings[assetID] = &copied
	}
	return &Portfolio{
		PortfolioID: p.PortfolioID,
		UserID:      p.UserID,
		Name:        p.Name,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		holdings:    holdings,
	}
}

// ApplyTransaction is the single entry point for mutating holdings.
//
// BUY increases the position and recomputes the weighted-average cost.
// SELL decreases the position and removes it when it reaches exactly zero.
// DIVIDEND is recorded as a fact only and never touches holdings.
//
// On any error the portfolio is left unchanged.
func (p *Portfolio) ApplyTransaction(transaction *Transaction) error {
	if transaction.PortfolioID != p.PortfolioID {
		return TransactionMismatchError{
			TransactionID:          transaction.TransactionID,
			TransactionPortfolioID: transaction.PortfolioID,
			PortfolioID:            p.PortfolioID,
		}
	}

	switch transaction.Type {
	case TransactionTypeBuy:
		return p.applyBuy(transaction)
	case TransactionTypeSell:
		return p.applySell(transaction)
	case TransactionTypeDividend:
		// Recorded as a fact only; analytics over dividends live elsewhere.
		return nil
	default:
		return InvalidPortfolioOperationError{
			Reason: "unsupported transaction type " + string(transaction.Type),
		}
	}
}

func (p *Portfolio) applyBuy(transaction *Transaction) error {
	holding, ok := p.holdings[transaction.AssetID]
	if !ok {
		created, err := NewHolding(transaction.AssetID, transaction.Quantity, transaction.PricePerUnit)
		if err != nil {
			return err
		}
		p.holdings[transaction.AssetID] = created
		return nil
	}

	totalCost := holding.Quantity.Mul(holding.AverageCost).
		Add(transaction.Quantity.Mul(transaction.PricePerUnit))
	totalQuantity := holding.Quantity.Add(transaction.Quantity)
	holding.AverageCost = totalCost.Div(totalQuantity)
	holding.Quantity = totalQuantity
	return nil
}

func (p *Portfolio) applySell(transaction *Transaction) error {
	holding, ok := p.holdings[transaction.AssetID]
	if !ok {
		return InsufficientHoldingsError{
			AssetID:   transaction.AssetID,
			Requested: transaction.Quantity,
			Available: decimal.Zero,
		}
	}
	if holding.Quantity.LessThan(transaction.Quantity) {
		return InsufficientHoldingsError{
			AssetID:   transaction.AssetID,
			Requested: transaction.Quantity,
			Available: holding.Quantity,
		}
	}

	holding.Quantity = holding.Quantity.Sub(transaction.Quantity)
	if holding.Quantity.IsZero() {
		delete(p.holdings, transaction.AssetID)
	}
	return nil
}
