// Package respond writes JSON responses for the component routers.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorOut is the body of every non-2xx JSON response
type ErrorOut struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorOut{Error: msg})
}
