package server

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeJSON sends v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a standardized JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := map[string]string{
		"code":    code,
		"message": message,
	}
	if rid := chimw.GetReqID(r.Context()); rid != "" {
		resp["request_id"] = rid
	}
	writeJSON(w, status, resp)
}
