package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/hub/internal/httpserver/mw"
)

func init() { Register(registerProbes) }

// registerProbes mounts the liveness, readiness and infra endpoints behind the CIDR allowlist.
func registerProbes(r chi.Router, d deps.Deps) {
	probes := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	probes.Get("/healthz", handlers.Healthz(d))
	probes.Get("/readyz", handlers.Readyz(d))
	probes.Get("/infra", handlers.Infra(d))
}
