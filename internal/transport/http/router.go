package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"profiles/pkg/platform/httputil"
	"profiles/pkg/platform/middleware/metadata"
	"profiles/pkg/platform/middleware/requesttime"
)

const healthCheckTimeout = 2 * time.Second

// Registrar mounts a bounded context's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// RouterDeps groups what NewRouter needs. Metrics and HealthChecks are optional.
type RouterDeps struct {
	Logger       *slog.Logger
	Handlers     []Registrar
	Metrics      http.Handler
	HealthChecks map[string]HealthCheck
}

// NewRouter builds the public chi router.
//
// Middleware order: RequestID -> RealIP -> Recoverer -> ClientMetadata -> RequestTime.
// ClientMetadata must run after RequestID so the generated ID reaches the logs.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", healthHandler(deps.Logger, deps.HealthChecks))
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}
	for _, h := range deps.Handlers {
		h.Register(r)
	}
	return r
}

func healthHandler(logger *slog.Logger, checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		results := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = "unavailable"
				if logger != nil {
					logger.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
				}
				continue
			}
			results[name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(results) > 0 {
			body["checks"] = results
		}
		httputil.WriteJSON(w, status, body)
	}
}
