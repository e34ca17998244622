package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"portfoliotracker/api"
	"portfoliotracker/internal"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"
	"portfoliotracker/pkg/users"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	// Optional: local setups keep PORTFOLIO_ENV in a .env file.
	_ = godotenv.Load()

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	apiRequestRepository := repository.NewAPIRequestRepository()
	uowFactory := repository.NewUnitOfWorkFactory(dbConn, portfolioRepository, transactionRepository)

	usersClient := users.NewClient(secrets.UserService.BaseURL)

	portfolioService := service.NewPortfolioService(uowFactory, usersClient)

	return &api.ApiHandler{
		Db:                   dbConn,
		PortfolioService:     portfolioService,
		ApiRequestRepository: apiRequestRepository,
		JwtSecret:            secrets.Jwt,
	}, nil
}
