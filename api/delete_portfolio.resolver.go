package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) deletePortfolio(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
		return
	}

	if m.requirePortfolioOwner(c, portfolioID) == nil {
		return
	}

	if err := m.PortfolioService.DeletePortfolio(c.Request.Context(), portfolioID); err != nil {
		returnDomainError(err, c)
		return
	}

	c.Status(http.StatusNoContent)
}
