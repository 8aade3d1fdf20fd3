// Package http assembles the service's HTTP surface: routing, middleware
// and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	appsvc "github.com/nutrirx/DrugFood-Intelligence/internal/application/interaction"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/http/handlers"
	"github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/http/middleware"
)

// Version is reported by the readiness endpoint; overridden at build time.
var Version = "dev"

// NewRouter builds the chi router with the full middleware stack and all
// endpoints.  metrics may be nil, which drops the /metrics endpoint and
// per-request observations.
func NewRouter(svc *appsvc.Service, metrics *prometheus.Metrics, log logging.Logger) http.Handler {
	if log == nil {
		log = logging.NewNopLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}
	r.Use(middleware.CORS)
	r.Use(chimw.Recoverer)

	health := handlers.NewHealthHandler(
		svc.ModelLoaded,
		func(req *http.Request) bool { return svc.CacheHealthy(req.Context()) },
		Version,
	)
	drugH := handlers.NewDrugHandler(svc, log)
	foodH := handlers.NewFoodHandler(svc, log)
	interactionH := handlers.NewInteractionHandler(svc, log)

	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/drugs/canonical", drugH.Canonical)
		r.Post("/drugs/descriptors", drugH.Descriptors)
		r.Post("/foods/nutrients", foodH.Nutrients)
		r.Get("/nutrients", foodH.Catalogue)
		r.Post("/interactions/predict", interactionH.Predict)
	})

	return r
}
