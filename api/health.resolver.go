package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) health(c *gin.Context) {
	if err := m.Db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
	})
}
