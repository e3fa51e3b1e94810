package render

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/metrics"
)

var testOpts = PageOptions{
	Title:    "CIDB Dashboard Hub",
	Subtitle: "One page",
	Caption:  "Tip",
	Columns:  2,
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"aset.png":           {Data: []byte("png")},
		"img/senarai 1.png":  {Data: []byte("png")},
		"folder.png/readme":  {Data: []byte("not an image")},
		"pendahuluan.png.gz": {Data: []byte("png")},
	}
}

func testEntries() []domain.Entry {
	return []domain.Entry{
		{Title: "Dashboard Pendahuluan CIDB", Description: "Pendahuluan / monitoring.", Tag: "Finance", URL: "https://pendahuluan.example.com/", Image: "pendahuluan.png"},
		{Title: "Dashboard Aset (SAP vs Easset)", Description: "Semakan & reconciliation aset.", Tag: "Asset", URL: "https://aset.example.com/", Image: "aset.png"},
		{Title: "Tunggakan Pesanan Tempatan", Bullets: []string{"Laporan tunggakan PO/PL", "Tindakan susulan PTJ"}, Tag: "Procurement", URL: "https://tunggakan.example.com/"},
		{Title: "Senarai Pesanan Tempatan", Description: "Listing & semakan.", Tag: "Listing", URL: "https://senarai.example.com/", Image: "img/senarai 1.png"},
	}
}

func newTestRenderer(t *testing.T, m *metrics.Metrics) *Renderer {
	t.Helper()
	r, err := New(testAssets(), logger.NewNop(), m)
	require.NoError(t, err)
	return r
}

func cardTitles(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func TestBuildPageColumns(t *testing.T) {
	r := newTestRenderer(t, nil)

	page := r.BuildPage(testEntries(), "", testOpts)

	require.Len(t, page.Columns, 2)
	assert.Equal(t, []string{"Dashboard Pendahuluan CIDB", "Tunggakan Pesanan Tempatan"}, cardTitles(page.Columns[0]))
	assert.Equal(t, []string{"Dashboard Aset (SAP vs Easset)", "Senarai Pesanan Tempatan"}, cardTitles(page.Columns[1]))
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 4, page.Shown)
}

func TestBuildPageFiltersBeforeLayout(t *testing.T) {
	r := newTestRenderer(t, nil)

	page := r.BuildPage(testEntries(), "pesanan", testOpts)

	// the two survivors are re-numbered 0 and 1
	assert.Equal(t, []string{"Tunggakan Pesanan Tempatan"}, cardTitles(page.Columns[0]))
	assert.Equal(t, []string{"Senarai Pesanan Tempatan"}, cardTitles(page.Columns[1]))
	assert.Equal(t, 2, page.Shown)
	assert.Equal(t, "pesanan", page.Query)
}

func TestCardsImageProbe(t *testing.T) {
	m := metrics.New()
	r := newTestRenderer(t, m)

	cards := r.Cards([]domain.Entry{
		{Title: "present", Image: "aset.png"},
		{Title: "nested with space", Image: "img/senarai 1.png"},
		{Title: "missing", Image: "pendahuluan.png"},
		{Title: "directory", Image: "folder.png"},
		{Title: "escape", Image: "../outside.png"},
		{Title: "no image"},
	})

	assert.Equal(t, "/assets/aset.png", cards[0].ImageURL)
	assert.Empty(t, cards[0].MissingImage)

	assert.Equal(t, "/assets/img/senarai%201.png", cards[1].ImageURL)

	for _, c := range cards[2:5] {
		assert.Empty(t, c.ImageURL, c.Title)
		assert.NotEmpty(t, c.MissingImage, c.Title)
	}

	assert.Empty(t, cards[5].ImageURL)
	assert.Empty(t, cards[5].MissingImage)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MissingImages.WithLabelValues("pendahuluan.png")))
}

func TestRenderMissingImageDoesNotHaltPage(t *testing.T) {
	r := newTestRenderer(t, nil)
	page := r.BuildPage(testEntries(), "", testOpts)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, "Preview image not found: pendahuluan.png")
	assert.Contains(t, html, `src="/assets/aset.png"`)

	// every entry keeps its link button, the missing-image one included
	for _, e := range testEntries() {
		assert.Contains(t, html, `href="`+e.URL+`" target="_blank" rel="noopener noreferrer"`)
	}
	assert.Equal(t, 4, strings.Count(html, "🚀 Open dashboard"))
}

func TestRenderCardContent(t *testing.T) {
	r := newTestRenderer(t, nil)
	page := r.BuildPage(testEntries(), "", testOpts)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, `<div class="badge">Procurement</div>`)
	assert.Contains(t, html, "<h4>Dashboard Aset (SAP vs Easset)</h4>")
	assert.Contains(t, html, "<p>Semakan &amp; reconciliation aset.</p>")
	assert.Contains(t, html, "<li>Laporan tunggakan PO/PL</li><li>Tindakan susulan PTJ</li>")
	assert.Contains(t, html, "<title>CIDB Dashboard Hub</title>")
	assert.Contains(t, html, `<p class="caption">Tip</p>`)
}

func TestRenderCardWithoutDescription(t *testing.T) {
	r := newTestRenderer(t, nil)
	entries := []domain.Entry{{Title: "Bare", Tag: "Misc", URL: "https://bare.example.com/"}}
	page := r.BuildPage(entries, "", testOpts)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, "<h4>Bare</h4>")
	assert.NotContains(t, html, "<p></p>")
	assert.NotContains(t, html, "<ul>")
	assert.Contains(t, html, `href="https://bare.example.com/"`)
}

func TestRenderNoMatch(t *testing.T) {
	r := newTestRenderer(t, nil)
	page := r.BuildPage(testEntries(), "zzz", testOpts)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))

	assert.Contains(t, buf.String(), "No dashboard matches “zzz”.")
	assert.NotContains(t, buf.String(), "Open dashboard")
}

func TestRenderEscapesQueryAndSanitizesDescriptions(t *testing.T) {
	r := newTestRenderer(t, nil)
	entries := []domain.Entry{{
		Title:       "Unsafe",
		Description: `<b>bold</b><script>alert(1)</script>`,
		Tag:         "x",
		URL:         "https://unsafe.example.com/",
	}}

	page := r.BuildPage(entries, `"><script>`, testOpts)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	assert.NotContains(t, buf.String(), `"><script>`)

	page = r.BuildPage(entries, "", testOpts)
	buf.Reset()
	require.NoError(t, r.Render(&buf, page))
	assert.Contains(t, buf.String(), "<b>bold</b>")
	assert.NotContains(t, buf.String(), "alert(1)")
}

func TestRenderWithoutAssetsFS(t *testing.T) {
	r, err := New(nil, logger.NewNop(), nil)
	require.NoError(t, err)

	cards := r.Cards([]domain.Entry{{Title: "x", Image: "aset.png"}})
	assert.Equal(t, "aset.png", cards[0].MissingImage)
}

func TestStaticFS(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), "hub.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".card")
}
