package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/sssbpuc/campusd/internal/model"
)

// writeJSON serializes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the admin API error envelope. The public admission and
// portal endpoints keep their own flat wire formats and do not use this.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: message},
	})
}

// readJSON decodes the request body as JSON into v, closing the body.
func readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// queryString extracts a string query parameter.
func queryString(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

// clientIP returns the caller's network origin. RemoteAddr is rewritten by
// the RealIP middleware when X-Forwarded-For / X-Real-IP are present, so
// behind a proxy this is the forwarded client address. Falls back to
// "unknown" when nothing usable is available, matching the rate limiter's
// placeholder origin.
func clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
