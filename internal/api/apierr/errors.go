package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/services/account"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidHolder     = "INVALID_HOLDER"
	CodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	CodeVaultNotFound     = "VAULT_NOT_FOUND"
	CodeVaultExists       = "VAULT_EXISTS"
	CodeContainerNotFound = "CONTAINER_NOT_FOUND"
	CodePlayerOffline     = "PLAYER_OFFLINE"
	CodeEngineFailure     = "ENGINE_FAILURE"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidHolder):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidHolder, "Invalid account holder"}}
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrVaultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVaultNotFound, "Vault not found"}}
	case errors.Is(err, model.ErrVaultExists):
		return &httpError{http.StatusConflict, APIError{CodeVaultExists, "A vault is already registered at this location"}}
	case errors.Is(err, model.ErrContainerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeContainerNotFound, "No container at this location"}}
	case errors.Is(err, model.ErrPlayerOffline):
		return &httpError{http.StatusConflict, APIError{CodePlayerOffline, "Player is not online"}}
	case errors.Is(err, account.ErrEngine):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeEngineFailure, "Account engine failure"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
