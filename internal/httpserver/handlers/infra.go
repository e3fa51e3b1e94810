package handlers

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type componentStatus struct {
	OK       bool     `json:"ok"`
	Entries  *int     `json:"entries,omitempty"`
	Source   string   `json:"source,omitempty"`
	Dir      string   `json:"dir,omitempty"`
	Missing  []string `json:"missing,omitempty"`
	Backend  string   `json:"backend,omitempty"`
	Sessions *int     `json:"sessions,omitempty"`
	Impact   string   `json:"impact,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		components := map[string]componentStatus{
			"catalog":  checkCatalog(d),
			"assets":   checkAssets(d),
			"sessions": checkSessions(ctx, d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

// overallStatus is critical without dashboards, degraded when previews or
// session persistence are unavailable.
func overallStatus(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "critical"
	}
	for _, name := range []string{"assets", "sessions"} {
		if c, ok := components[name]; ok && !c.OK {
			return "degraded"
		}
	}
	return "ok"
}

func checkCatalog(d deps.Deps) componentStatus {
	n := d.Catalog.Len()
	return componentStatus{
		OK:      n > 0,
		Entries: &n,
		Source:  d.CatalogSource,
	}
}

func checkAssets(d deps.Deps) componentStatus {
	if d.Assets == nil {
		return componentStatus{
			OK:     false,
			Dir:    d.AssetsDir,
			Impact: "previews-disabled",
			Error:  "assets directory not found",
		}
	}

	var missing []string
	for _, e := range d.Catalog.Entries() {
		if !e.HasImage() {
			continue
		}
		if info, err := fs.Stat(d.Assets, e.Image); err != nil || !info.Mode().IsRegular() {
			missing = append(missing, e.Image)
		}
	}

	return componentStatus{
		OK:      len(missing) == 0,
		Dir:     d.AssetsDir,
		Missing: missing,
	}
}

func checkSessions(ctx context.Context, d deps.Deps) componentStatus {
	if d.Sessions == nil {
		return componentStatus{
			OK:     false,
			Impact: "search-not-remembered",
			Error:  "session store not initialized",
		}
	}

	store := d.Sessions.Store()
	if p, ok := store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return componentStatus{
				OK:      false,
				Backend: d.SessionStore,
				Impact:  "search-not-remembered",
				Error:   err.Error(),
			}
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		return componentStatus{
			OK:      false,
			Backend: d.SessionStore,
			Error:   err.Error(),
		}
	}

	return componentStatus{
		OK:       true,
		Backend:  d.SessionStore,
		Sessions: &n,
	}
}
