package api

import (
	"errors"
	"net/http"

	"github.com/andriawan/minibank-backend/internal/api/httpx"
	"github.com/andriawan/minibank-backend/internal/models"
	"github.com/andriawan/minibank-backend/internal/validate"
)

// writeDomainErr maps the ledger's typed errors onto HTTP status codes.
// The core never sees transport semantics; this is the only place the
// mapping lives.
func writeDomainErr(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	if errors.As(err, &verrs) {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "validation failed", verrs)
		return
	}
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, models.ErrAccountUnavailable):
		httpx.WriteError(w, http.StatusNotFound, "account_unavailable", err.Error(), nil)
	case errors.Is(err, models.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, models.ErrImmutableField):
		httpx.WriteError(w, http.StatusBadRequest, "immutable_field", err.Error(), nil)
	case errors.Is(err, models.ErrInsufficientFunds):
		httpx.WriteError(w, http.StatusBadRequest, "insufficient_funds", err.Error(), nil)
	case errors.Is(err, models.ErrPerTxLimitExceeded):
		httpx.WriteError(w, http.StatusBadRequest, "per_tx_limit_exceeded", err.Error(), nil)
	case errors.Is(err, models.ErrDailyLimitExceeded):
		httpx.WriteError(w, http.StatusBadRequest, "daily_limit_exceeded", err.Error(), nil)
	case errors.Is(err, models.ErrPrivilegeConflict):
		httpx.WriteError(w, http.StatusForbidden, "privilege_conflict", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
