package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/logger"
)

// Hub renders the hub page for the viewer's current search text.
func Hub(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := d.Sessions.ResolveQuery(w, r)

		page := d.Renderer.BuildPage(d.Catalog.Entries(), query, d.Page)

		d.Logger.Debug("rendering hub",
			logger.String("query", query),
			logger.Int("shown", page.Shown),
			logger.Int("total", page.Total))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := d.Renderer.Render(w, page); err != nil {
			d.Logger.Error("failed to render hub page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if d.Metrics != nil {
			d.Metrics.PageRenders.WithLabelValues("html", strconv.FormatBool(query != "")).Inc()
		}
	}
}
