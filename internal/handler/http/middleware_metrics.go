package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withRequestMetrics counts requests by chi route pattern and status code.
// Unrouted paths share one label value.
func (h *Handler) withRequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rw.statusCode())).Inc()
	})
}
