package catalog

import (
	"fmt"
	"path"
	"strings"

	"github.com/MrSnakeDoc/hub/internal/domain"
)

// Mapper converts catalog file entries to domain entries
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEntries converts a FileConfig to an ordered domain.Entry slice.
// Dashboards without a title or url are skipped; file order is kept.
func (m *Mapper) MapEntries(config *FileConfig) ([]domain.Entry, error) {
	if config == nil {
		return nil, fmt.Errorf("no catalog config")
	}

	entries := make([]domain.Entry, 0, len(config.Dashboards))
	for _, props := range config.Dashboards {
		title := strings.TrimSpace(props.Title)
		url := strings.TrimSpace(props.URL)
		if title == "" || url == "" {
			continue
		}

		bullets := append(trimAll(props.Description.Lines), trimAll(props.Bullets)...)

		entries = append(entries, domain.Entry{
			Title:       title,
			Description: strings.TrimSpace(props.Description.Text),
			Bullets:     bullets,
			Tag:         strings.TrimSpace(props.Tag),
			URL:         url,
			Image:       cleanImage(props.Image),
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid dashboards found in catalog config")
	}

	return entries, nil
}

// trimAll trims every line and drops empty ones
func trimAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// cleanImage normalizes an image reference to a slash-separated relative name
func cleanImage(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(image, "\\", "/"))
}
