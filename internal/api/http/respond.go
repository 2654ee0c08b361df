package http

import (
	"encoding/json"
	"net/http"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError translates a use-case failure into a transport error. Validation
// and conflict failures surface their message verbatim with a 400; unresolved
// ids give 404; invariant violations are data-integrity faults and give 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch domain.KindOf(err) {
	case domain.ErrorKindValidation, domain.ErrorKindConflict:
		status = http.StatusBadRequest
		message = err.Error()
	case domain.ErrorKindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case domain.ErrorKindInvariant:
		logger.Error("Invariant violation", "error", err)
	default:
		logger.Error("Unhandled error", "error", err)
	}

	writeJSON(w, status, map[string]string{"error": message})
}
