package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAddr, EnvFundingFile, EnvDebug, EnvRateLimit, EnvRedisAddr, EnvCacheTTL} {
		t.Setenv(key, "")
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Empty(t, cfg.FundingFile)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
}

func TestLoadServerConfig_FromEnv(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvFundingFile, "/etc/hpgo/funding.yaml")
	t.Setenv(EnvDebug, "yes")
	t.Setenv(EnvRateLimit, "0")
	t.Setenv(EnvRedisAddr, "localhost:6379")
	t.Setenv(EnvCacheTTL, "90m")

	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/etc/hpgo/funding.yaml", cfg.FundingFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
}

func TestLoadServerConfig_DotEnv(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(EnvAddr, ":7000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "HPGO_ADDR=:9999\nHPGO_DEBUG=on\nHPGO_RATE_LIMIT=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr, "environment wins over dotenv")
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(EnvDebug, "sometimes")
	_, err := LoadServerConfig("")
	assert.Error(t, err)

	clearServerEnv(t)
	t.Setenv(EnvRateLimit, "-4")
	_, err = LoadServerConfig("")
	assert.Error(t, err)

	clearServerEnv(t)
	t.Setenv(EnvCacheTTL, "a while")
	_, err = LoadServerConfig("")
	assert.Error(t, err)
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("HPGO_TEST_A", "")
	t.Setenv("HPGO_TEST_B", "")
	t.Setenv("HPGO_TEST_C", "")
	t.Setenv("HPGO_TEST_Q", "")

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte(`
# comment

HPGO_TEST_A=one
export HPGO_TEST_B=two
HPGO_TEST_C="three"
HPGO_TEST_Q='hello world'
not a pair
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "one", os.Getenv("HPGO_TEST_A"))
	assert.Equal(t, "two", os.Getenv("HPGO_TEST_B"))
	assert.Equal(t, "three", os.Getenv("HPGO_TEST_C"))
	assert.Equal(t, "hello world", os.Getenv("HPGO_TEST_Q"))
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("HPGO_TEST_KEEP", "already")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HPGO_TEST_KEEP=fromfile\n"), 0o600))
	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "already", os.Getenv("HPGO_TEST_KEEP"))
}
