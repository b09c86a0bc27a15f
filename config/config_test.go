package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_Defaults(t *testing.T) {
	assert.Equal(t, "127.0.0.1", getEnv("MUSICGRAPH_TEST_UNSET_HOST", "127.0.0.1"))
	assert.Equal(t, 10, getEnvInt("MUSICGRAPH_TEST_UNSET_ATTEMPTS", 10))
	assert.Equal(t, time.Minute, getEnvDuration("MUSICGRAPH_TEST_UNSET_TTL", time.Minute))
	assert.True(t, getEnvBool("MUSICGRAPH_TEST_UNSET_SSL", true))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "mysql.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "5s")
	t.Setenv("DB_CONNECT_ATTEMPTS", "3")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "mysql.internal:3307", cfg.StoreEndpoint())
	assert.Equal(t, "catalog", cfg.DBName)
	assert.Equal(t, ":9000", cfg.ListenAddr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.DBConnectAttempts)
	assert.True(t, cfg.MinioUseSSL)
}

func TestGetEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("CACHE_TTL", "forever")
	t.Setenv("MINIO_USE_SSL", "maybe")

	assert.Equal(t, 0, getEnvInt("REDIS_DB", 0))
	assert.Equal(t, 60*time.Second, getEnvDuration("CACHE_TTL", 60*time.Second))
	assert.False(t, getEnvBool("MINIO_USE_SSL", false))
}
