package api

import (
	"fmt"
	"net/http"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddTransactionRequest struct {
	PortfolioID  uuid.UUID       `json:"portfolioID"`
	AssetID      string          `json:"assetID"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ExecutedAt   time.Time       `json:"executedAt"`
	Currency     string          `json:"currency"`
}

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transactionID"`
	PortfolioID   uuid.UUID `json:"portfolioID"`
	AssetID       string    `json:"assetID"`
	Type          string    `json:"type"`
	Quantity      string    `json:"quantity"`
	PricePerUnit  string    `json:"pricePerUnit"`
	TotalAmount   string    `json:"totalAmount"`
	ExecutedAt    string    `json:"executedAt"`
	Currency      string    `json:"currency"`
}

func transactionResponseFromDomain(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		PortfolioID:   t.PortfolioID,
		AssetID:       t.AssetID,
		Type:          string(t.Type),
		Quantity:      t.Quantity.String(),
		PricePerUnit:  t.PricePerUnit.String(),
		TotalAmount:   t.TotalAmount.String(),
		ExecutedAt:    t.ExecutedAt.UTC().Format(time.RFC3339),
		Currency:      t.Currency,
	}
}

func (m ApiHandler) addTransaction(c *gin.Context) {
	var requestBody AddTransactionRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, http.StatusBadRequest)
		return
	}

	if m.requirePortfolioOwner(c, requestBody.PortfolioID) == nil {
		return
	}

	transaction, err := m.PortfolioService.AddTransaction(c.Request.Context(), service.AddTransactionInput{
		PortfolioID:  requestBody.PortfolioID,
		AssetID:      requestBody.AssetID,
		Type:         domain.TransactionType(requestBody.Type),
		Quantity:     requestBody.Quantity,
		PricePerUnit: requestBody.PricePerUnit,
		TotalAmount:  requestBody.TotalAmount,
		ExecutedAt:   requestBody.ExecutedAt,
		Currency:     requestBody.Currency,
	})
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(http.StatusCreated, transactionResponseFromDomain(transaction))
}
