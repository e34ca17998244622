// Package users talks to the external user registry that owns identity data.
// Portfolio ownership is validated against it on every call; results are
// never cached locally.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go

const (
	defaultRequestTimeout = 5 * time.Second
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Client interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
}

type clientHandler struct {
	HttpClient     *http.Client
	BaseURL        string
	RequestTimeout time.Duration
	Retry          RetryPolicy
}

func NewClient(baseURL string) Client {
	return clientHandler{
		HttpClient:     &http.Client{},
		BaseURL:        strings.TrimRight(baseURL, "/"),
		RequestTimeout: defaultRequestTimeout,
		Retry:          DefaultRetryPolicy(),
	}
}

// NotFoundError is terminal: the registry answered and the user does not
// exist. Never retried.
type NotFoundError struct {
	UserID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.UserID)
}

// UnavailableError is transient: a 5xx, a timeout, or a network-level
// failure. Retried with backoff.
type UnavailableError struct {
	StatusCode int
	Err        error
}

func (e UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("user service unavailable: %v", e.Err)
	}
	return fmt.Sprintf("user service unavailable: status code %d", e.StatusCode)
}

func (e UnavailableError) Unwrap() error { return e.Err }

// ServiceError is terminal: the registry answered with something we do not
// know how to handle. Never retried.
type ServiceError struct {
	StatusCode int
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("user service returned unexpected status code %d", e.StatusCode)
}

// GetByID looks the user up, retrying transient failures per the client's
// RetryPolicy. Terminal failures and context cancellation abort immediately;
// after exhausting retries the last transient error is returned.
func (c clientHandler) GetByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	var user *User
	err := retryWithBackoff(ctx, c.Retry, isTransient, func(ctx context.Context) error {
		fetched, err := c.fetch(ctx, userID)
		if err != nil {
			return err
		}
		user = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c clientHandler) fetch(ctx context.Context, userID uuid.UUID) (*User, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/v1/users/%s", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user lookup request: %w", err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, UnavailableError{Err: err}
		}
		user := User{}
		if err := json.Unmarshal(body, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user %s: %w", userID, err)
		}
		return &user, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, NotFoundError{UserID: userID}
	case resp.StatusCode >= 500:
		return nil, UnavailableError{StatusCode: resp.StatusCode}
	default:
		return nil, ServiceError{StatusCode: resp.StatusCode}
	}
}

func isTransient(err error) bool {
	var unavailable UnavailableError
	return errors.As(err, &unavailable)
}
