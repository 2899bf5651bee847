package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit returns a middleware enforcing a server-wide token bucket of
// ratePerSec requests per second. Burst is set equal to the rate so no
// extra burst capacity is allowed beyond the configured per-second maximum.
// Requests that find the bucket empty are rejected with 429 rather than
// queued, so a flood cannot pile up goroutines waiting for tokens.
func RateLimit(ratePerSec int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, try again later"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
