package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Payload    any    `json:"payload,omitempty"`
}

// validationPayload carries the structured field errors for a 400.
type validationPayload struct {
	Errors []domain.FieldError `json:"errors"`
}

// listResponse is the wire shape of every listing body.
type listResponse struct {
	Items  any   `json:"items"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error body with the fixed shape.
func writeError(w http.ResponseWriter, statusCode int, message string, payload any) {
	writeJSON(w, statusCode, errorResponse{
		Message:    message,
		StatusCode: statusCode,
		Payload:    payload,
	})
}

// writeDomainError translates a service error into an HTTP response. Domain
// error messages are propagated verbatim; anything unrecognized becomes a
// generic 500 without internal detail.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationErrors
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "validation failed", validationPayload{Errors: verr.Errors})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
