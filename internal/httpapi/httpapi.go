// Package httpapi exposes the debt services over a REST/JSON API.
// Handlers stay thin: decode, delegate to a service, translate the error
// kind to a status code, encode. All domain rules live in the services.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Guilherme-dev15/finance-app/internal/auth"
	"github.com/Guilherme-dev15/finance-app/internal/finance"
	"github.com/Guilherme-dev15/finance-app/internal/service"
)

// errorResponse is the JSON shape of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Infrastructure details stay in the logs.
		slog.Error("Internal error", "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps domain error kinds to HTTP status codes. Anything
// unrecognized is an infrastructure failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDebtNotFound),
		errors.Is(err, service.ErrNoActiveDebts):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidDebt),
		errors.Is(err, finance.ErrInvalidPayment),
		errors.Is(err, finance.ErrInvalidInput),
		errors.Is(err, finance.ErrInvalidDebtType),
		errors.Is(err, finance.ErrNonConvergent):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrInvalidDebt)
	}
	return nil
}

// parseDate accepts plain dates (2006-01-02) and full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", service.ErrInvalidDebt, value)
}
