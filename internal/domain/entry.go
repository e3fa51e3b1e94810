package domain

import "strings"

// Entry represents one dashboard linked from the hub.
//
// An Entry is a value: it is built once when the catalog is assembled
// and never changes afterwards.
type Entry struct {
	// ─────────────────────────────
	// Display
	// ─────────────────────────────

	// Title is the display name of the dashboard.
	// Example: Dashboard Aset (SAP vs Easset)
	Title string `json:"title"`

	// Description is a single paragraph describing the dashboard.
	// Either Description or Bullets (or both) may be set.
	Description string `json:"description,omitempty"`

	// Bullets is an ordered list of short description lines.
	Bullets []string `json:"bullets,omitempty"`

	// Tag is the short category label shown as a badge.
	// Example: Asset
	Tag string `json:"tag"`

	// ─────────────────────────────
	// Targets
	// ─────────────────────────────

	// URL is the external dashboard address. It is treated as opaque.
	URL string `json:"url"`

	// Image is an optional preview filename, relative to the assets dir.
	Image string `json:"image,omitempty"`
}

// SearchText returns the text a query is matched against:
// title, description, bullets and tag joined by single spaces.
func (e Entry) SearchText() string {
	parts := make([]string, 0, 3+len(e.Bullets))
	parts = append(parts, e.Title)
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	parts = append(parts, e.Bullets...)
	parts = append(parts, e.Tag)
	return strings.Join(parts, " ")
}

// HasImage reports whether the entry references a preview image.
func (e Entry) HasImage() bool {
	return strings.TrimSpace(e.Image) != ""
}
