package http

import (
	"net"
	"net/http"
	"strconv"
	"time"
)

// RateLimitMiddleware throttles requests per client address. Rejected
// requests get a Retry-After hint matching the limiter's window.
func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !limiter.Allow(client) {
			w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window/time.Second)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
