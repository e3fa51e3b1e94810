package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperMapEntries(t *testing.T) {
	config := &FileConfig{
		Dashboards: []DashboardProps{
			{
				Title:       "  Dashboard Pendahuluan CIDB ",
				Description: Description{Text: "Pendahuluan / monitoring."},
				Tag:         "Finance",
				URL:         "https://dashboard-pendahuluancidb.streamlit.app/",
				Image:       "./img/pendahuluan.png",
			},
			{
				Title:       "Tunggakan Pesanan Tempatan",
				Description: Description{Lines: []string{"Laporan tunggakan", "  "}},
				Bullets:     []string{"Tindakan susulan"},
				Tag:         "Procurement",
				URL:         "https://tunggakan.example.com/",
			},
		},
	}

	entries, err := NewMapper().MapEntries(config)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Dashboard Pendahuluan CIDB", entries[0].Title)
	assert.Equal(t, "Pendahuluan / monitoring.", entries[0].Description)
	assert.Nil(t, entries[0].Bullets)
	assert.Equal(t, "img/pendahuluan.png", entries[0].Image)

	assert.Equal(t, "", entries[1].Description)
	assert.Equal(t, []string{"Laporan tunggakan", "Tindakan susulan"}, entries[1].Bullets)
	assert.Equal(t, "", entries[1].Image)
}

func TestMapperSkipsIncompleteDashboards(t *testing.T) {
	config := &FileConfig{
		Dashboards: []DashboardProps{
			{Title: "No URL", Tag: "x"},
			{URL: "https://no-title.example.com/"},
			{Title: "Kept", URL: "https://kept.example.com/"},
		},
	}

	entries, err := NewMapper().MapEntries(config)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].Title)
}

func TestMapperMapEntriesEmptyConfig(t *testing.T) {
	_, err := NewMapper().MapEntries(&FileConfig{})
	assert.Error(t, err)

	_, err = NewMapper().MapEntries(nil)
	assert.Error(t, err)
}
