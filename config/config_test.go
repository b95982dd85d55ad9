package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GIN_MODE", "FE_ORIGIN", "LOG_LEVEL", "STORAGE_BACKEND", "STORAGE_DIR",
		"STORAGE_KEY", "STORAGE_QUOTA_BYTES", "DATABASE_URL", "REDIS_URL",
		"CLICKHOUSE_HOST", "CLICKHOUSE_NATIVE_PORT", "CLICKHOUSE_DB_NAME",
		"CLICKHOUSE_USERNAME", "CLICKHOUSE_PASSWORD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.StorageDir)
	assert.Equal(t, "portfolio_analytics", cfg.StorageKey)
	assert.Equal(t, int64(DefaultQuotaBytes), cfg.QuotaBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.FEOrigin)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("STORAGE_QUOTA_BYTES", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, int64(0), cfg.QuotaBytes)
}

func TestLoad_InvalidQuota(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_QUOTA_BYTES", "-5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "localstorage")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORAGE_BACKEND")
}

func TestLoad_ClickHouseRequiresHost(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "clickhouse")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CLICKHOUSE_HOST", "localhost")
	t.Setenv("CLICKHOUSE_NATIVE_PORT", "9000")
	t.Setenv("CLICKHOUSE_DB_NAME", "analytics")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.ClickHouse.NativePort)
}

func TestLoad_PostgresDefaultURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "postgres")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_KEY=from_dotenv\n"), 0644))

	// godotenv does not override variables that are already set, so unset it first.
	require.NoError(t, os.Unsetenv("STORAGE_KEY"))
	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv("STORAGE_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.StorageKey)
}
