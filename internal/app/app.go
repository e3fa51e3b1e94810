package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/hub/internal/config"
	"github.com/MrSnakeDoc/hub/internal/httpserver"
	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/index"
	"github.com/MrSnakeDoc/hub/internal/logger"
	"github.com/MrSnakeDoc/hub/internal/metrics"
	"github.com/MrSnakeDoc/hub/internal/redis"
	"github.com/MrSnakeDoc/hub/internal/render"
	"github.com/MrSnakeDoc/hub/internal/scheduler"
	"github.com/MrSnakeDoc/hub/internal/session"
	"github.com/MrSnakeDoc/hub/internal/sources/catalog"
	redisstore "github.com/MrSnakeDoc/hub/internal/store/redis"
	"github.com/MrSnakeDoc/hub/internal/utils"
	"github.com/MrSnakeDoc/hub/internal/version"
)

const (
	sessionBackendRedis  = "redis"
	sessionBackendMemory = "memory"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	sweeper     *scheduler.SessionSweeper
}

func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	cat, source, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	loggerClient.Info("catalog loaded",
		logger.String("source", source),
		logger.Int("entries", cat.Len()))

	m := metrics.New()
	m.CatalogSize.Set(float64(cat.Len()))

	assets := openAssets(cfg.AssetsDir, loggerClient)

	renderer, err := render.New(assets, loggerClient, m)
	if err != nil {
		return nil, err
	}

	store, backend, redisClient, sweeper := newSessionStore(cfg, loggerClient)

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Catalog:         cat,
		CatalogSource:   source,
		Page: render.PageOptions{
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
			Caption:  cfg.Caption,
			Columns:  cfg.Columns,
		},
		Renderer:     renderer,
		Assets:       assets,
		AssetsDir:    cfg.AssetsDir,
		Sessions:     session.NewManager(store, cfg.SessionTTL, loggerClient),
		SessionStore: backend,
		Metrics:      m,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		sweeper:     sweeper,
	}, nil
}

// openAssets returns the preview image directory, or nil when it does not exist.
func openAssets(dir string, log logger.Logger) fs.FS {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("assets directory not found, every preview will be reported missing",
			logger.String("dir", dir))
		return nil
	case err != nil:
		log.Warn("assets directory unreadable", logger.String("dir", dir), logger.Error(err))
		return nil
	case !info.IsDir():
		log.Warn("assets path is not a directory", logger.String("dir", dir))
		return nil
	}
	return os.DirFS(dir)
}

// newSessionStore picks Redis when configured and reachable, the in-memory
// store otherwise. The sweeper is only needed for the in-memory store.
func newSessionStore(cfg *config.Config, log logger.Logger) (session.Store, string, *goredis.Client, *scheduler.SessionSweeper) {
	if cfg.RedisEnabled() {
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err == nil {
			log.Info("sessions stored in redis")
			return redisstore.NewStore(client), sessionBackendRedis, client, nil
		}
		log.Warn("redis unavailable, falling back to in-memory sessions", logger.Error(err))
	}

	mem := index.NewMemorySessions()
	return mem, sessionBackendMemory, nil, scheduler.NewSessionSweeper(mem, log, cfg.SessionSweepInterval)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Hub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Hub %s", version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.sweeper != nil {
		a.sweeper.Start(ctx)
		a.logger.Info("session sweeper started",
			logger.Duration("interval", a.cfg.SessionSweepInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.close()
	a.logger.Info("✅ Hub stopped cleanly")
	return nil
}

func (a *App) close() {
	if a.sweeper != nil {
		a.sweeper.Stop()
	}
	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}
}
