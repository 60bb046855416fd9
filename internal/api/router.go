package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Fuzzy/internal/advisor"
	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/store"
)

func NewRouter(s store.Store, a *decision.Advisor, svc *advisor.Service, adminToken string, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	evaluate := NewEvaluateHandler(svc)
	decisions := NewDecisionsHandler(s, svc)
	explain := NewExplainHandler(decisions, a)
	admin := NewAdminHandler(s, a)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ClientIDMiddleware)

		r.Post("/evaluate", evaluate.Evaluate)
		r.Post("/utility", Utility)

		r.Post("/decisions", decisions.Create)
		r.Get("/decisions", decisions.List)
		r.Get("/decisions/{id}", decisions.Get)
		r.Get("/decisions/{id}/explain", explain.Explain)

		r.Get("/variables", admin.Variables)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
