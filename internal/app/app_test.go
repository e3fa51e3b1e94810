package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/hub/internal/config"
	"github.com/MrSnakeDoc/hub/internal/index"
	"github.com/MrSnakeDoc/hub/internal/logger"
)

func TestOpenAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aset.png"), []byte("png"), 0o600))

	assets := openAssets(dir, logger.NewNop())
	require.NotNil(t, assets)
	_, err := assets.Open("aset.png")
	assert.NoError(t, err)

	assert.Nil(t, openAssets(filepath.Join(dir, "missing"), logger.NewNop()))
	assert.Nil(t, openAssets(filepath.Join(dir, "aset.png"), logger.NewNop()))
}

func TestSessionStoreWithoutRedis(t *testing.T) {
	cfg := &config.Config{SessionSweepInterval: time.Minute}

	store, backend, client, sweeper := newSessionStore(cfg, logger.NewNop())

	assert.Equal(t, sessionBackendMemory, backend)
	assert.IsType(t, &index.MemorySessions{}, store)
	assert.Nil(t, client)
	assert.NotNil(t, sweeper)
}

func TestSessionStoreFallsBackWhenRedisUnreachable(t *testing.T) {
	cfg := &config.Config{
		SessionSweepInterval: time.Minute,
		RedisAddr:            "127.0.0.1:1",
		RedisDT:              50 * time.Millisecond,
		RedisRT:              50 * time.Millisecond,
		RedisWT:              50 * time.Millisecond,
		RedisPoolSize:        1,
		RedisConnectTimeout:  200 * time.Millisecond,
		RedisRetryInterval:   50 * time.Millisecond,
		RedisMaxWait:         100 * time.Millisecond,
		RedisPingTimeout:     50 * time.Millisecond,
	}

	store, backend, client, sweeper := newSessionStore(cfg, logger.NewNop())

	assert.Equal(t, sessionBackendMemory, backend)
	assert.IsType(t, &index.MemorySessions{}, store)
	assert.Nil(t, client)
	assert.NotNil(t, sweeper)
}

func TestNewWithBuiltinCatalog(t *testing.T) {
	cfg := &config.Config{
		ListenPort:           "127.0.0.1:0",
		ShutdownTimeout:      time.Second,
		Columns:              2,
		AssetsDir:            t.TempDir(),
		SessionTTL:           time.Hour,
		SessionSweepInterval: time.Minute,
		RateLimitBurst:       10,
		RateLimitPerMin:      10,
	}

	a, err := New(cfg, logger.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, a.server)
	assert.NotNil(t, a.sweeper)
	assert.Nil(t, a.redisClient)
	a.close()
}

func TestNewFailsOnBadCatalogFile(t *testing.T) {
	cfg := &config.Config{
		CatalogFile: filepath.Join(t.TempDir(), "nope.yaml"),
		Columns:     2,
		AssetsDir:   t.TempDir(),
		SessionTTL:  time.Hour,
	}

	_, err := New(cfg, logger.NewNop())
	assert.ErrorContains(t, err, "failed to load catalog")
}
