package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes payload with the given status. Only the health endpoints speak
// JSON; everything user-facing renders HTML.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// headers are already out, nothing left to report
		_ = err
	}
}

// JSONError writes a one-field error body.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}
