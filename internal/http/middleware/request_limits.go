package middleware

import (
	"net/http"
)

// RequestSizeLimit caps the request body at maxBytes. Handlers see the
// cap as a read error on the body, which they report as a 400.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
