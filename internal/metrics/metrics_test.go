package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAreIndependentPerInstance(t *testing.T) {
	a := New()
	b := New()

	a.MissingImages.WithLabelValues("aset.png").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.MissingImages.WithLabelValues("aset.png")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.MissingImages.WithLabelValues("aset.png")))
}

func TestHandlerExposesHubMetrics(t *testing.T) {
	m := New()
	m.CatalogSize.Set(4)
	m.PageRenders.WithLabelValues("html", "false").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hub_catalog_entries 4")
	assert.Contains(t, string(body), `hub_page_renders_total{filtered="false",format="html"} 1`)
}
