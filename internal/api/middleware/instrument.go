package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/casestudy/backend-api/internal/metrics"
)

// Instrument returns a middleware that records every completed request in
// the Prometheus instruments: one counter increment, one latency
// observation, and an in-flight gauge held for the duration of the call.
// Recording runs in a deferred block: a panic unwinding through the
// middleware still releases the gauge, is counted as the 500 the outer
// Recoverer will send, and is re-raised for Recoverer to handle.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww, ok := w.(chimw.WrapResponseWriter)
			if !ok {
				ww = chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			m.RequestsInFlight.Inc()
			defer func() {
				m.RequestsInFlight.Dec()

				status := ww.Status()
				rec := recover()
				if rec != nil {
					status = http.StatusInternalServerError
				} else if status == 0 {
					status = http.StatusOK
				}

				m.RequestsTotal.WithLabelValues(
					r.Method, r.URL.Path, strconv.Itoa(status),
				).Inc()
				m.RequestDuration.WithLabelValues(
					r.Method, r.URL.Path,
				).Observe(time.Since(start).Seconds())

				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
