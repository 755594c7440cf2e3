package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// RespondJSON writes payload as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError sends a plain error message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondErrorCode sends an error with a machine-readable code and
// timestamp, the format API clients key their handling on.
func RespondErrorCode(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, map[string]string{
		"error":     message,
		"code":      code,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
