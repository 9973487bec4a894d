package middleware

import (
	"fmt"
	"net/http"

	"github.com/hirefold/hirefold/internal/config"
)

// SecurityHeaders sets browser security headers on every response. The
// API only ever serves JSON to a separate frontend, so the default
// policy forbids responses from being embedded or rendered as documents.
func SecurityHeaders(cfg config.SecurityHeadersConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			setIfConfigured(h, "Content-Security-Policy", cfg.CSP)
			if cfg.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security", fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge))
			}
			setIfConfigured(h, "X-Frame-Options", cfg.FrameOptions)
			setIfConfigured(h, "X-Content-Type-Options", cfg.ContentTypeOptions)
			setIfConfigured(h, "X-XSS-Protection", cfg.XSSProtection)
			setIfConfigured(h, "Referrer-Policy", cfg.ReferrerPolicy)
			setIfConfigured(h, "Permissions-Policy", cfg.PermissionsPolicy)

			next.ServeHTTP(w, r)
		})
	}
}

func setIfConfigured(h http.Header, key, value string) {
	if value != "" {
		h.Set(key, value)
	}
}
