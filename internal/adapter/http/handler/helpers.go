package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/buckpal/internal/adapter/http/dto"
	"github.com/iho/buckpal/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrMalformedAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseAccountID reads a non-negative integer account id from a URL parameter.
func parseAccountID(r *http.Request, key string) (domain.AccountID, error) {
	raw := chi.URLParam(r, key)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", key, raw)
	}
	if id < 0 {
		return 0, fmt.Errorf("%s %q is negative", key, raw)
	}

	return domain.AccountID(id), nil
}
