package handler

import (
	"encoding/json"
	"net/http"
)

// HealthCheck reports that the console process is up. It does not probe the
// backend.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "console is healthy and running"})
}
