package http

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/httputil"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// RequireSession extracts the browsing session from the X-Session-ID header
// and stores it in the request context. Requests without one are rejected;
// the storefront generates the ID on first load.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get("X-Session-ID"))
		if sid == "" {
			httputil.WriteError(w, r, apperrors.InvalidInput("X-Session-ID header is required"), nil)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the session stored by RequireSession.
func sessionID(r *http.Request) string {
	if sid, ok := r.Context().Value(sessionIDKey).(string); ok {
		return sid
	}
	return ""
}

// CORS allows the storefront origin to call the API from the browser.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Session-ID, X-Correlation-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
