package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gamebay/marketplace/pkg/api"
)

// The upstream auth layer terminates sessions and MFA, then forwards the
// verified account id in this header. This service trusts it as-is.
const accountHeader = "X-Account-Id"

type contextKey string

const accountIDKey contextKey = "accountID"

// AccountID returns the verified account id attached to the request, or the
// empty string for anonymous requests.
func AccountID(r *http.Request) string {
	id, _ := r.Context().Value(accountIDKey).(string)
	return id
}

// WithAccount reads the verified account id header into the request context.
// It does not reject anonymous requests; see RequireAccount.
func WithAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(accountHeader); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), accountIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAccount rejects requests that carry no verified account id.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if AccountID(r) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.Error{
				Kind:    "Unauthenticated",
				Message: "a verified account is required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
