package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires the paycheck endpoints. Calculation requests go through the
// rate limiter; every route gets a correlation ID.
func NewRouter(handler *PaycheckHandler, limiter Limiter, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		"/paycheck/calculate",
		RateLimitMiddleware(
			limiter,
			http.HandlerFunc(handler.Calculate),
		),
	)
	mux.HandleFunc("/paycheck/latest", handler.Latest)
	mux.HandleFunc("/healthz", Health)

	return CorrelationMiddleware(log, mux)
}
