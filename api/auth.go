package api

import (
	"fmt"
	"net/http"
	"strings"

	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const userAccountIDKey = "userAccountID"

// authMiddleware requires a Bearer token signed with the shared HS256 secret
// and stashes the subject claim as the caller's user id.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, http.StatusUnauthorized)
		return
	}

	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		returnErrorJsonCode(fmt.Errorf("invalid authorization header"), c, http.StatusUnauthorized)
		return
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		returnErrorJsonCode(fmt.Errorf("invalid token"), c, http.StatusUnauthorized)
		return
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("token missing subject"), c, http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("token subject is not a valid user id"), c, http.StatusUnauthorized)
		return
	}

	c.Set(userAccountIDKey, userID)
	c.Next()
}

func callerUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userAccountIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// requireOwner rejects the request when the authenticated caller is not the
// given user. Returns false after writing the response.
func requireOwner(c *gin.Context, ownerID uuid.UUID) bool {
	callerID, ok := callerUserID(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("missing authentication context"), c, http.StatusUnauthorized)
		return false
	}
	if callerID != ownerID {
		returnErrorJsonCode(fmt.Errorf("forbidden"), c, http.StatusForbidden)
		return false
	}
	return true
}

// requirePortfolioOwner loads the portfolio and checks that the caller owns
// it. Returns nil after writing the response on any failure.
func (m ApiHandler) requirePortfolioOwner(c *gin.Context, portfolioID uuid.UUID) *domain.Portfolio {
	portfolio, err := m.PortfolioService.GetPortfolio(c.Request.Context(), portfolioID)
	if err != nil {
		returnDomainError(err, c)
		return nil
	}
	if !requireOwner(c, portfolio.UserID) {
		return nil
	}
	return portfolio
}
