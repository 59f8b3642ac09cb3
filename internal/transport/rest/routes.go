package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klattlab/pronlex/internal/transport/middleware"
)

// Router assembles the full HTTP handler: lexicon routes, health probes,
// Prometheus metrics, and the middleware stack.
func Router(logger *slog.Logger, lookup *LookupHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/words/{spelling}", lookup.Word)
	mux.HandleFunc("GET /v1/fillers", lookup.Fillers)
	mux.HandleFunc("GET /v1/dump", lookup.Dump)

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux)
}
