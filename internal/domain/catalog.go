package domain

import "slices"

// Catalog is the fixed, ordered list of all dashboard entries.
// Its order is the default display order.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from entries. The slice is copied (bullets
// included) so later changes by the caller are not observed.
func NewCatalog(entries []Entry) *Catalog {
	return &Catalog{entries: cloneEntries(entries)}
}

// Entries returns a copy of the catalog in display order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return cloneEntries(c.entries)
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Search filters the catalog with query. See Filter.
func (c *Catalog) Search(query string) []Entry {
	return Filter(c.Entries(), query)
}

func cloneEntries(entries []Entry) []Entry {
	owned := make([]Entry, len(entries))
	for i, e := range entries {
		e.Bullets = slices.Clone(e.Bullets)
		owned[i] = e
	}
	return owned
}
