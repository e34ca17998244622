package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// APIRequestRepository records one row per inbound HTTP request. Writes are
// deliberately outside any unit of work so the audit row survives a rolled
// back request.
type APIRequestRepository interface {
	Add(db *sql.DB, apiRequest model.APIRequest) (*model.APIRequest, error)
	Update(db *sql.DB, apiRequest model.APIRequest) error
}

type apiRequestRepositoryHandler struct{}

func NewAPIRequestRepository() APIRequestRepository {
	return apiRequestRepositoryHandler{}
}

func (h apiRequestRepositoryHandler) Add(db *sql.DB, apiRequest model.APIRequest) (*model.APIRequest, error) {
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(apiRequest).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	if err := query.Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}
	return &out, nil
}

func (h apiRequestRepositoryHandler) Update(db *sql.DB, apiRequest model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(
			table.APIRequest.ResponseBody,
			table.APIRequest.StatusCode,
			table.APIRequest.DurationMs,
		).
		MODEL(apiRequest).
		WHERE(table.APIRequest.ID.EQ(postgres.UUID(apiRequest.ID)))

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}
	return nil
}
