package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same {"error","code"} envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
