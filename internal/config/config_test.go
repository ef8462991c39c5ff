package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  port: 8080
  gin_mode: release
database:
  dsn: "host=localhost user=app dbname=app"
redis:
  addr: "localhost:6379"
  db: 0
jwt:
  issuer: "http://0.0.0.0:8080"
  audience: "users"
  ttl: "8760h"
session:
  ttl: "168h"
verification:
  ttl: "120s"
twilio:
  account_sid: ""
  auth_token: ""
  from_number: ""
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "test-secret", cfg.JWTSecret)
	require.Equal(t, "http://0.0.0.0:8080", cfg.JWTIssuer)
	require.Equal(t, "users", cfg.JWTAudience)
	require.Equal(t, 365*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 120*time.Second, cfg.CodeTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_DSN", "host=db user=prod dbname=prod")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "host=db user=prod dbname=prod", cfg.DSN)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.ErrorContains(t, err, "SECRET_KEY")
}

func TestLoad_BadTTL(t *testing.T) {
	bad := writeTestConfig(t, `
app:
  port: 8080
jwt:
  ttl: "one year"
session:
  ttl: "168h"
verification:
  ttl: "120s"
`)
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_PATH", bad)
	t.Setenv("SECRET_KEY", "test-secret")

	_, err := Load()
	require.ErrorContains(t, err, "JWT TTL")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))
	t.Setenv("SECRET_KEY", "test-secret")

	_, err := Load()
	require.Error(t, err)
}
