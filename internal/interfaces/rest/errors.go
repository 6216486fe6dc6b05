package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanielPopoola/atm-teller/internal/domain"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPStatus maps a domain outcome code to a response status. Every
// business decline is a client-visible condition, never a 500.
func ToHTTPStatus(err error) int {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodeInvalidAmount, domain.ErrCodeInvalidOperation:
		return http.StatusBadRequest
	case domain.ErrCodePinMismatch:
		return http.StatusUnauthorized
	case domain.ErrCodeCardRetained:
		return http.StatusForbidden
	case domain.ErrCodeAccountNotFound, domain.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domain.ErrCodeInvalidIntent:
		return http.StatusConflict
	case domain.ErrCodeInsufficientBalance,
		domain.ErrCodeInsufficientCash,
		domain.ErrCodeUnrepresentableAmount:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode extracts the stable outcome code for the response envelope.
func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "INTERNAL_ERROR"
}

// WriteError maps machine outcomes to HTTP responses
func WriteError(w http.ResponseWriter, err error) {
	response := ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    ToErrorCode(err),
			Message: err.Error(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ToHTTPStatus(err))
	json.NewEncoder(w).Encode(response)
}
