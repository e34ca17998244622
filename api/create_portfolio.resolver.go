package api

import (
	"fmt"
	"net/http"

	"portfoliotracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreatePortfolioRequest struct {
	UserID   uuid.UUID `json:"userID"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
}

func (m ApiHandler) createPortfolio(c *gin.Context) {
	var requestBody CreatePortfolioRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, http.StatusBadRequest)
		return
	}

	if !requireOwner(c, requestBody.UserID) {
		return
	}

	portfolio, err := m.PortfolioService.CreatePortfolio(c.Request.Context(), service.CreatePortfolioInput{
		UserID:   requestBody.UserID,
		Name:     requestBody.Name,
		Currency: requestBody.Currency,
	})
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(http.StatusCreated, portfolioResponseFromDomain(portfolio))
}
