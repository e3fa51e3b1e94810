package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/render"
)

func dashboardsDeps(t *testing.T, columns int) deps.Deps {
	t.Helper()

	assets := fstest.MapFS{
		"one.png":   {Data: []byte("png")},
		"three.png": {Data: []byte("png")},
	}
	renderer, err := render.New(assets, logger.NewNop(), nil)
	require.NoError(t, err)

	return deps.Deps{
		Logger: logger.NewNop(),
		Catalog: domain.NewCatalog([]domain.Entry{
			{Title: "One", Tag: "Misc", URL: "https://one.example.com/", Image: "one.png"},
			{Title: "Two", Tag: "Misc", URL: "https://two.example.com/", Image: "two.png"},
			{Title: "Three", Tag: "Misc", URL: "https://three.example.com/", Image: "three.png"},
			{Title: "Four", Tag: "Misc", URL: "https://four.example.com/"},
		}),
		Page:     render.PageOptions{Columns: columns},
		Renderer: renderer,
	}
}

type itemJSON struct {
	Title        string `json:"title"`
	Column       int    `json:"column"`
	Image        string `json:"image"`
	ImageURL     string `json:"image_url"`
	ImageMissing bool   `json:"image_missing"`
}

func getDashboards(t *testing.T, d deps.Deps, target string) (total, count, columns int, items []itemJSON) {
	t.Helper()

	rec := httptest.NewRecorder()
	Dashboards(d)(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total   int        `json:"total"`
		Count   int        `json:"count"`
		Columns int        `json:"columns"`
		Entries []itemJSON `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Total, resp.Count, resp.Columns, resp.Entries
}

func TestDashboardsImageStatusAndColumns(t *testing.T) {
	total, count, columns, items := getDashboards(t, dashboardsDeps(t, 2), "/api/dashboards")

	assert.Equal(t, 4, total)
	assert.Equal(t, 4, count)
	assert.Equal(t, 2, columns)
	require.Len(t, items, 4)

	assert.Equal(t, itemJSON{Title: "One", Column: 0, Image: "one.png", ImageURL: "/assets/one.png"}, items[0])
	assert.Equal(t, itemJSON{Title: "Two", Column: 1, Image: "two.png", ImageMissing: true}, items[1])
	assert.Equal(t, itemJSON{Title: "Three", Column: 0, Image: "three.png", ImageURL: "/assets/three.png"}, items[2])
	// No image referenced: nothing is missing.
	assert.Equal(t, itemJSON{Title: "Four", Column: 1}, items[3])
}

func TestDashboardsColumnsFollowFilteredOrder(t *testing.T) {
	_, count, _, items := getDashboards(t, dashboardsDeps(t, 2), "/api/dashboards?q=t")

	// "Two" and "Three" survive; positions restart from the filtered list.
	assert.Equal(t, 2, count)
	require.Len(t, items, 2)
	assert.Equal(t, "Two", items[0].Title)
	assert.Equal(t, 0, items[0].Column)
	assert.True(t, items[0].ImageMissing)
	assert.Equal(t, "Three", items[1].Title)
	assert.Equal(t, 1, items[1].Column)
	assert.False(t, items[1].ImageMissing)
}

func TestDashboardsInvalidColumnCount(t *testing.T) {
	_, _, columns, items := getDashboards(t, dashboardsDeps(t, 0), "/api/dashboards")

	assert.Equal(t, 1, columns)
	for _, it := range items {
		assert.Equal(t, 0, it.Column, it.Title)
	}
}
