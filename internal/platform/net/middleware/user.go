package middleware

import (
	"net/http"

	pnet "mingle/internal/platform/net"
)

// UserHeader lifts the X-User-ID header onto the request context.
// Session validation happens upstream; this only carries the identity through
func UserHeader() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid := r.Header.Get("X-User-ID"); uid != "" {
				r = r.WithContext(pnet.WithUser(r.Context(), uid))
			}
			next.ServeHTTP(w, r)
		})
	}
}
