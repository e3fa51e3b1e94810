package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Page
	Title    string // page heading
	Subtitle string // line under the heading
	Caption  string // footer caption
	Columns  int    // number of card columns (default: 2)

	// Catalog & assets
	CatalogFile string // path to a catalog YAML file (empty = built-in catalog)
	AssetsDir   string // directory holding preview images (ex: "assets")

	// Sessions
	SessionTTL           time.Duration // how long a viewer's search text is kept (default: 12h)
	SessionSweepInterval time.Duration // in-memory session cleanup interval (default: 10m)

	// Redis (optional, empty addr = in-memory sessions)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password when redis is enabled
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Rate limiting of the hub page and API
	RateLimitBurst  int // bucket size per client IP
	RateLimitPerMin int // refill per client IP per minute
}

// envFiles are loaded in order; .env.local overrides .env.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads variables from .env files when present.
// Variables already set in the environment win.
func LoadEnvFiles() {
	for i := len(envFiles) - 1; i >= 0; i-- {
		_ = godotenv.Load(envFiles[i])
	}
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HUB_PRETTY_LOG", true),

		// Page
		Title:    getenv("HUB_TITLE", "📌 CIDB Dashboard Hub"),
		Subtitle: getenv("HUB_SUBTITLE", "One page to access all your dashboards."),
		Caption:  getenv("HUB_CAPTION", "Tip: set this hub as your main link and share it to PTJ."),
		Columns:  getenvInt("HUB_COLUMNS", 2),

		// Catalog & assets
		CatalogFile: getenv("HUB_CATALOG_FILE", ""),
		AssetsDir:   getenv("HUB_ASSETS_DIR", "assets"),

		// Sessions
		SessionTTL:           mustDuration("HUB_SESSION_TTL", 12*time.Hour),
		SessionSweepInterval: mustDuration("HUB_SESSION_SWEEP_INTERVAL", 10*time.Minute),

		// Redis settings
		RedisAddr:             getenv("HUB_REDIS_ADDR", ""),
		RedisUser:             getenv("HUB_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("HUB_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("HUB_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("HUB_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("HUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("HUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("HUB_TRUST_PROXY", true),

		RateLimitBurst:  getenvInt("HUB_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("HUB_RATE_LIMIT_PER_MIN", 120),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// RedisEnabled reports whether sessions are stored in Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Validate checks values that have no sane fallback.
func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("HUB_COLUMNS must be >= 1, got %d", c.Columns)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("HUB_SESSION_TTL must be > 0, got %v", c.SessionTTL)
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("HUB_SESSION_SWEEP_INTERVAL must be > 0, got %v", c.SessionSweepInterval)
	}
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		return fmt.Errorf("HUB_REDIS_PASSWORD is required when HUB_REDIS_PASSWORD_REQUIRED=true")
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
