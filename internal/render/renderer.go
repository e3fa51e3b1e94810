// Package render turns catalog entries into the hub page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/metrics"
)

//go:embed templates/*.html static/*
var embedded embed.FS

// AssetsPrefix is the URL path preview images are served under.
const AssetsPrefix = "/assets/"

// Card is the view model of one entry.
type Card struct {
	Tag         string
	Title       string
	Description template.HTML
	Bullets     []template.HTML
	URL         string

	// ImageURL is set when the preview image exists.
	ImageURL string
	// MissingImage names the referenced image when it could not be found.
	MissingImage string
}

// Page is the view model of the whole hub page.
type Page struct {
	Title    string
	Subtitle string
	Caption  string
	Query    string
	Columns  [][]Card
	Total    int // entries in the catalog
	Shown    int // entries left after filtering
}

// PageOptions holds the page chrome.
type PageOptions struct {
	Title    string
	Subtitle string
	Caption  string
	Columns  int
}

// Renderer builds and renders hub pages. It is safe for concurrent use.
type Renderer struct {
	assets  fs.FS
	tmpl    *template.Template
	policy  *bluemonday.Policy
	logger  logger.Logger
	metrics *metrics.Metrics
}

// New parses the embedded template. assets is the filesystem preview
// images are looked up in; it may be nil, in which case every image is
// reported missing. m may be nil.
func New(assets fs.FS, log logger.Logger, m *metrics.Metrics) (*Renderer, error) {
	tmpl, err := template.ParseFS(embedded, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		assets:  assets,
		tmpl:    tmpl,
		policy:  bluemonday.UGCPolicy(),
		logger:  log,
		metrics: m,
	}, nil
}

// StaticFS returns the embedded stylesheet directory.
func StaticFS() fs.FS {
	sub, _ := fs.Sub(embedded, "static")
	return sub
}

// BuildPage filters all with query and lays the result out in columns.
func (r *Renderer) BuildPage(all []domain.Entry, query string, opts PageOptions) Page {
	filtered := domain.Filter(all, query)
	columns := domain.Layout(filtered, opts.Columns)

	page := Page{
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
		Caption:  opts.Caption,
		Query:    query,
		Columns:  make([][]Card, len(columns)),
		Total:    len(all),
		Shown:    len(filtered),
	}
	for i, col := range columns {
		page.Columns[i] = r.Cards(col)
	}

	if r.metrics != nil {
		r.metrics.FilterResults.Observe(float64(len(filtered)))
	}
	return page
}

// Cards converts entries to cards, keeping their order.
func (r *Renderer) Cards(entries []domain.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, r.card(e))
	}
	return cards
}

func (r *Renderer) card(e domain.Entry) Card {
	c := Card{
		Tag:         e.Tag,
		Title:       e.Title,
		Description: r.sanitize(e.Description),
		URL:         e.URL,
	}
	for _, b := range e.Bullets {
		c.Bullets = append(c.Bullets, r.sanitize(b))
	}

	if e.HasImage() {
		if r.imageExists(e.Image) {
			c.ImageURL = ImageURL(e.Image)
		} else {
			c.MissingImage = e.Image
			r.logger.Warn("preview image not found",
				logger.String("image", e.Image),
				logger.String("title", e.Title))
			if r.metrics != nil {
				r.metrics.MissingImages.WithLabelValues(e.Image).Inc()
			}
		}
	}
	return c
}

// Render executes the page template. Output is buffered so a template
// error never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "hub.html", page); err != nil {
		return fmt.Errorf("failed to render hub page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) sanitize(s string) template.HTML {
	// bluemonday output is safe to embed as HTML
	return template.HTML(r.policy.Sanitize(s)) // #nosec G203
}

// imageExists reports whether name is a regular file inside the assets
// filesystem. Names escaping the assets dir never exist.
func (r *Renderer) imageExists(name string) bool {
	if r.assets == nil || !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(r.assets, name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ImageURL returns the escaped URL path of a preview image.
func ImageURL(name string) string {
	u := url.URL{Path: path.Join(AssetsPrefix, name)}
	return u.EscapedPath()
}
