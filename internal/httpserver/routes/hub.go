package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/hub/internal/httpserver/mw"
)

func init() { Register(registerHub) }

func registerHub(r chi.Router, d deps.Deps) {
	limited := r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			MaxEntries:        10000,
			TrustProxy:        d.TrustProxy,
			Logger:            d.Logger,
		}),
	)
	limited.Get("/", handlers.Hub(d))
	limited.Get("/api/dashboards", handlers.Dashboards(d))
}
