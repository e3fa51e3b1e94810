package catalog

import (
	"fmt"

	"github.com/MrSnakeDoc/hub/internal/domain"
)

const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
)

// Builtin returns the canonical CIDB dashboard list.
func Builtin() []domain.Entry {
	return []domain.Entry{
		{
			Title:       "Dashboard Pendahuluan CIDB",
			Description: "Pendahuluan / monitoring (hubungan kepada proses kewangan).",
			Tag:         "Finance",
			URL:         "https://dashboard-pendahuluancidb.streamlit.app/",
			Image:       "pendahuluan.png",
		},
		{
			Title:       "Dashboard Aset (SAP vs Easset)",
			Description: "Semakan & reconciliation aset SAP vs Easset.",
			Tag:         "Asset",
			URL:         "https://dashboard-aset-sap-vs-easset.streamlit.app/",
			Image:       "aset.png",
		},
		{
			Title:       "Tunggakan Pesanan Tempatan",
			Description: "Laporan tunggakan PO/PL & tindakan susulan PTJ.",
			Tag:         "Procurement",
			URL:         "https://dashboard-tunggakan-pesanan-tempatan-cidb.streamlit.app/",
			Image:       "tunggakan.png",
		},
		{
			Title:       "Senarai Pesanan Tempatan",
			Description: "Senarai pengeluaran pesanan tempatan (listing & semakan).",
			Tag:         "Listing",
			URL:         "https://senaraipesanantempatan.streamlit.app/",
			Image:       "senarai.png",
		},
	}
}

// Load builds the catalog once at startup. An empty filePath selects the
// built-in list; otherwise the file must parse and hold at least one
// valid dashboard.
func Load(filePath string) (*domain.Catalog, string, error) {
	if filePath == "" {
		return domain.NewCatalog(Builtin()), SourceBuiltin, nil
	}

	config, err := NewLoader(filePath).Load()
	if err != nil {
		return nil, "", err
	}

	entries, err := NewMapper().MapEntries(config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to map catalog: %w", err)
	}

	return domain.NewCatalog(entries), SourceFile, nil
}
