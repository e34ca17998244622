package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"
	"portfoliotracker/internal/uow"
	"portfoliotracker/pkg/users"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	PortfolioService     service.PortfolioService
	ApiRequestRepository repository.APIRequestRepository
	JwtSecret            string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/health", m.health)

	authed := router.Group("", m.authMiddleware)
	authed.POST("/portfolios", m.createPortfolio)
	authed.GET("/portfolios/:id", m.getPortfolio)
	authed.PUT("/portfolios/:id", m.updatePortfolio)
	authed.DELETE("/portfolios/:id", m.deletePortfolio)
	authed.GET("/portfolios/:id/transactions", m.listTransactions)
	authed.GET("/users/:id/portfolios", m.getUserPortfolios)
	authed.POST("/transactions", m.addTransaction)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": "internal server error",
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnDomainError maps known failure kinds to request-rejection codes
// without leaking internals; everything unknown is a 500.
func returnDomainError(err error, c *gin.Context) {
	var (
		insufficient domain.InsufficientHoldingsError
		mismatch     domain.TransactionMismatchError
		invalidData  domain.InvalidTransactionDataError
		invalidOp    domain.InvalidPortfolioOperationError
		ownerMissing users.NotFoundError
		unavailable  users.UnavailableError
	)

	switch {
	case errors.Is(err, uow.ErrPortfolioNotFound):
		returnErrorJsonCode(fmt.Errorf("portfolio not found"), c, http.StatusNotFound)
	case errors.As(err, &insufficient),
		errors.As(err, &mismatch),
		errors.As(err, &invalidData),
		errors.As(err, &invalidOp):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	case errors.As(err, &ownerMissing):
		returnErrorJsonCode(fmt.Errorf("portfolio owner not found"), c, http.StatusBadRequest)
	case errors.As(err, &unavailable):
		returnErrorJsonCode(fmt.Errorf("user service unavailable"), c, http.StatusServiceUnavailable)
	default:
		returnErrorJson(err, c)
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	type userIdBody struct {
		UserID uuid.UUID `json:"userID"`
	}

	reqBody := userIdBody{}
	_ = json.Unmarshal(body, &reqBody)
	var userID *uuid.UUID
	if reqBody.UserID != uuid.Nil {
		userID = &reqBody.UserID
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      userID,
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Warn("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())
		if err := m.ApiRequestRepository.Update(m.Db, *req); err != nil {
			logger.Warn("failed to finalize api request: %v", err)
		}
	}
}
