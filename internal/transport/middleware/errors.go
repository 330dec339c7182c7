package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same JSON error body the REST handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"message": message,
		"error":   http.StatusText(status),
	})
}
