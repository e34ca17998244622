package api

import (
	"fmt"
	"net/http"

	"portfoliotracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdatePortfolioRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

func (m ApiHandler) updatePortfolio(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
		return
	}

	var requestBody UpdatePortfolioRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, http.StatusBadRequest)
		return
	}

	if m.requirePortfolioOwner(c, portfolioID) == nil {
		return
	}

	portfolio, err := m.PortfolioService.UpdatePortfolio(c.Request.Context(), service.UpdatePortfolioInput{
		PortfolioID: portfolioID,
		Name:        requestBody.Name,
		Currency:    requestBody.Currency,
	})
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(http.StatusOK, portfolioResponseFromDomain(portfolio))
}
