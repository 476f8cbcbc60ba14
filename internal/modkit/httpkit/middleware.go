package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"mingle/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware for API mounting; compose auth or
// rate limiting on top in main as needed
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.UserHeader(),

		// safety
		middleware.RecoverJSON,

		// freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog,

		// cross-origin
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
