package api

import (
	"fmt"
	"net/http"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HoldingResponse struct {
	AssetID     string `json:"assetID"`
	Quantity    string `json:"quantity"`
	AverageCost string `json:"averageCost"`
}

type PortfolioResponse struct {
	PortfolioID uuid.UUID         `json:"portfolioID"`
	UserID      uuid.UUID         `json:"userID"`
	Name        string            `json:"name"`
	Currency    string            `json:"currency"`
	CreatedAt   string            `json:"createdAt"`
	Holdings    []HoldingResponse `json:"holdings"`
}

func portfolioResponseFromDomain(p *domain.Portfolio) PortfolioResponse {
	holdings := []HoldingResponse{}
	for _, h := range p.Holdings() {
		holdings = append(holdings, HoldingResponse{
			AssetID:     h.AssetID,
			Quantity:    h.Quantity.String(),
			AverageCost: h.AverageCost.String(),
		})
	}
	return PortfolioResponse{
		PortfolioID: p.PortfolioID,
		UserID:      p.UserID,
		Name:        p.Name,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		Holdings:    holdings,
	}
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
		return
	}

	portfolio := m.requirePortfolioOwner(c, portfolioID)
	if portfolio == nil {
		return
	}

	c.JSON(http.StatusOK, portfolioResponseFromDomain(portfolio))
}
