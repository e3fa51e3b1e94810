package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
)

var timeNow = time.Now

type readyzResponse struct {
	Ready   bool `json:"ready"`
	Entries int  `json:"entries"`
}

// Readyz reports ready once the catalog holds at least one dashboard.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.Catalog.Len()
		ready := entries > 0

		w.Header().Set("Content-Type", "application/json")
		if ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:   ready,
			Entries: entries,
		})
	}
}
