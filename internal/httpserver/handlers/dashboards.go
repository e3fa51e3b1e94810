package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/session"
)

type dashboardItem struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Tag          string   `json:"tag"`
	URL          string   `json:"url"`
	Column       int      `json:"column"`
	Image        string   `json:"image,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ImageMissing bool     `json:"image_missing,omitempty"`
}

type dashboardsResponse struct {
	Query   string          `json:"query"`
	Total   int             `json:"total"`
	Count   int             `json:"count"`
	Columns int             `json:"columns"`
	Entries []dashboardItem `json:"entries"`
}

// Dashboards returns the filtered catalog as JSON, in display order.
// Unlike the page, it does not read or write the viewer session.
func Dashboards(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get(session.QueryParam)

		all := d.Catalog.Entries()
		filtered := domain.Filter(all, query)
		cards := d.Renderer.Cards(filtered)

		columns := d.Page.Columns
		if columns < 1 {
			columns = 1
		}

		resp := dashboardsResponse{
			Query:   query,
			Total:   len(all),
			Count:   len(filtered),
			Columns: columns,
			Entries: make([]dashboardItem, 0, len(filtered)),
		}
		for i, e := range filtered {
			resp.Entries = append(resp.Entries, dashboardItem{
				Title:        e.Title,
				Description:  e.Description,
				Bullets:      e.Bullets,
				Tag:          e.Tag,
				URL:          e.URL,
				Column:       i % columns,
				Image:        e.Image,
				ImageURL:     cards[i].ImageURL,
				ImageMissing: cards[i].MissingImage != "",
			})
		}

		if d.Metrics != nil {
			d.Metrics.PageRenders.WithLabelValues("json", strconv.FormatBool(query != "")).Inc()
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
