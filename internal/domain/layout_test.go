package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTwoColumns(t *testing.T) {
	entries := []Entry{{Title: "e0"}, {Title: "e1"}, {Title: "e2"}, {Title: "e3"}}

	cols := Layout(entries, DefaultColumns)

	require.Len(t, cols, 2)
	assert.Equal(t, []string{"e0", "e2"}, titles(cols[0]))
	assert.Equal(t, []string{"e1", "e3"}, titles(cols[1]))
}

func TestLayoutOddCount(t *testing.T) {
	entries := []Entry{{Title: "e0"}, {Title: "e1"}, {Title: "e2"}}

	cols := Layout(entries, 2)

	assert.Equal(t, []string{"e0", "e2"}, titles(cols[0]))
	assert.Equal(t, []string{"e1"}, titles(cols[1]))
}

func TestLayoutEmpty(t *testing.T) {
	cols := Layout(nil, 2)

	require.Len(t, cols, 2)
	assert.Empty(t, cols[0])
	assert.Empty(t, cols[1])
}

func TestLayoutInvalidColumnCount(t *testing.T) {
	entries := []Entry{{Title: "e0"}, {Title: "e1"}}

	cols := Layout(entries, 0)

	require.Len(t, cols, 1)
	assert.Equal(t, []string{"e0", "e1"}, titles(cols[0]))
}

func TestCatalogEntriesIsACopy(t *testing.T) {
	src := testEntries()
	c := NewCatalog(src)

	src[0].Title = "changed"
	got := c.Entries()
	got[1].Title = "changed too"
	got[2].Bullets[0] = "changed bullet"

	again := c.Entries()
	assert.Equal(t, "Dashboard Pendahuluan CIDB", again[0].Title)
	assert.Equal(t, "Dashboard Aset (SAP vs Easset)", again[1].Title)
	assert.Equal(t, "Laporan tunggakan PO/PL", again[2].Bullets[0])
	assert.Equal(t, 4, c.Len())
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalog(testEntries())

	assert.Equal(t, []string{"Dashboard Aset (SAP vs Easset)"}, titles(c.Search("aset")))
	assert.Len(t, c.Search(""), 4)
}
