package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getUserPortfolios(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid user id: %w", err), c, http.StatusBadRequest)
		return
	}

	if !requireOwner(c, userID) {
		return
	}

	portfolios, err := m.PortfolioService.ListUserPortfolios(c.Request.Context(), userID)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	out := []PortfolioResponse{}
	for _, p := range portfolios {
		out = append(out, portfolioResponseFromDomain(p))
	}
	c.JSON(http.StatusOK, out)
}
