package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type transactionCsvRow struct {
	TransactionID string `csv:"transaction_id"`
	AssetID       string `csv:"asset_id"`
	Type          string `csv:"type"`
	Quantity      string `csv:"quantity"`
	PricePerUnit  string `csv:"price_per_unit"`
	TotalAmount   string `csv:"total_amount"`
	ExecutedAt    string `csv:"executed_at"`
	Currency      string `csv:"currency"`
}

func (m ApiHandler) listTransactions(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
		return
	}

	if m.requirePortfolioOwner(c, portfolioID) == nil {
		return
	}

	transactions, err := m.PortfolioService.ListTransactions(c.Request.Context(), portfolioID)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	if c.Query("format") == "csv" {
		rows := []transactionCsvRow{}
		for _, t := range transactions {
			rows = append(rows, transactionCsvRow{
				TransactionID: t.TransactionID.String(),
				AssetID:       t.AssetID,
				Type:          string(t.Type),
				Quantity:      t.Quantity.String(),
				PricePerUnit:  t.PricePerUnit.String(),
				TotalAmount:   t.TotalAmount.String(),
				ExecutedAt:    t.ExecutedAt.UTC().Format(time.RFC3339),
				Currency:      t.Currency,
			})
		}
		out, err := gocsv.MarshalString(&rows)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.Data(http.StatusOK, "text/csv", []byte(out))
		return
	}

	out := []TransactionResponse{}
	for _, t := range transactions {
		out = append(out, transactionResponseFromDomain(t))
	}
	c.JSON(http.StatusOK, out)
}
