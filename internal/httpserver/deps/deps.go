package deps

import (
	"io/fs"
	"time"

	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/metrics"
	"github.com/MrSnakeDoc/hub/internal/render"
	"github.com/MrSnakeDoc/hub/internal/session"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts []string // Host headers allowed to access the hub
	AllowedCIDRS []string // IPs allowed to access infra endpoints (healthz/readyz/infra/metrics)
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RateLimitBurst  int // per-IP bucket size for the hub page and API
	RateLimitPerMin int // per-IP refill per minute

	Catalog       *domain.Catalog    // Static dashboard list, built once at startup
	CatalogSource string             // "builtin" or "file"
	Page          render.PageOptions // Page chrome and column count
	Renderer      *render.Renderer   // Hub page renderer
	Assets        fs.FS              // Preview images (nil if the assets dir is missing)
	AssetsDir     string             // Path of the assets dir, for reporting
	Sessions      *session.Manager   // Per-viewer search text
	SessionStore  string             // "redis" or "memory"
	Metrics       *metrics.Metrics   // Prometheus collectors
}
