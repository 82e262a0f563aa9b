package interfaces

import (
	"encoding/json"
	"log/slog"
	"net/http"

	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// NotFound 404, Validation 400, Conflict 409, anything else 500 with the
// detail logged rather than leaked.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("Unexpected service error", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
