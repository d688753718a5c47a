// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pitwall-dev/pitwall/internal/config"
	"github.com/pitwall-dev/pitwall/internal/middleware"
)

// NewRouter builds the Chi router with the full middleware stack and every
// dashboard route.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.API.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.API.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(cfg.API.RateLimitReqs, cfg.API.RateLimitWindow))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", h.Health)
		r.Get("/meta/years", h.Years)

		r.Get("/options/teams", h.TeamOptions)
		r.Get("/options/countries", h.CountryOptions)
		r.Get("/options/circuits", h.CircuitOptions)
		r.Get("/options/failures", h.FailureOptions)

		r.Get("/overview", h.Overview)
		r.Get("/circuits", h.Circuits)
		r.Get("/constructors/compare", h.Compare)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
