package http

import (
	"encoding/json"
	"net/http"
)

// Every response body carries a success flag; errors add a human-readable
// message and nothing else. Internal details stay in the server log.
func respondJSON(w http.ResponseWriter, status int, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	if _, ok := payload["success"]; !ok {
		payload["success"] = status < 400
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func respondServerError(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "Server error")
}
