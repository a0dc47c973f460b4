//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
environment: development
database:
  type: sqlite
  dsn: ":memory:"
session:
  secret: "`+testSecret+`"
  ttl: 24h
finance:
  platform_fee_percent: 7.5
  gst_percent: 18
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "admin_session", cfg.Session.CookieName)
	assert.Equal(t, OTPProviderDev, cfg.OTP.Provider)
	assert.Equal(t, 4, cfg.OTP.Length)
	assert.Equal(t, "91", cfg.OTP.DefaultCountryCode)
	assert.Equal(t, 7.5, cfg.Finance.PlatformFeePercent)
	assert.Equal(t, LogFormatText, cfg.Logger.Format)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.NeedsRedis())
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
  dsn: "admin.db"
`)
	t.Setenv("ADMIN_SESSION_SECRET", testSecret)
	t.Setenv("ADMIN_PORT", "7070")
	t.Setenv("ADMIN_DATABASE_DSN", ":memory:")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, testSecret, cfg.Session.Secret)
}

func TestInitializeRestConfig_LoggerAndCORSFromEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
  dsn: ":memory:"
session:
  secret: "`+testSecret+`"
logger:
  log_level: info
  log_type: console
cors:
  allowed_origins:
    - http://localhost:3000
`)
	t.Setenv("ADMIN_LOGGER_LOG_LEVEL", LogLevelCritical)
	t.Setenv("ADMIN_LOGGER_FORMAT", LogFormatJSON)
	t.Setenv("ADMIN_CORS_ALLOWED_ORIGINS", "https://admin.example.com,https://ops.example.com")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelCritical, cfg.Logger.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.Logger.Format)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestInitializeRestConfig_RejectsInvalidLoggerFromEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
  dsn: ":memory:"
session:
  secret: "`+testSecret+`"
`)
	t.Setenv("ADMIN_LOGGER_LOG_TYPE", LogTypeFile)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoggerSettings")
}

func TestInitializeRestConfig_RejectsWildcardOrigin(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
  dsn: ":memory:"
session:
  secret: "`+testSecret+`"
cors:
  allowed_origins: ["*"]
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORSSettings")
}

func TestCORSSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CORSSettings{AllowedOrigins: []string{"https://admin.example.com"}}).Validate())
	assert.NoError(t, (&CORSSettings{AllowedOrigins: []string{"http://localhost:3000", "https://admin.example.com"}}).Validate())
	assert.Error(t, (&CORSSettings{}).Validate())
	assert.Error(t, (&CORSSettings{AllowedOrigins: []string{"*"}}).Validate())
	assert.Error(t, (&CORSSettings{AllowedOrigins: []string{"admin.example.com"}}).Validate())
	assert.Error(t, (&CORSSettings{AllowedOrigins: []string{"ftp://files.example.com"}}).Validate())
}

func TestInitializeRestConfig_RejectsDevOTPInProduction(t *testing.T) {
	path := writeConfig(t, `
environment: production
database:
  type: sqlite
  dsn: ":memory:"
session:
  secret: "`+testSecret+`"
otp:
  provider: dev
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed in production")
}

func TestInitializeRestConfig_MissingSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  type: sqlite
  dsn: ":memory:"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}

func TestCacheSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CacheSettings{Type: CacheTypeNone}).Validate())
	assert.NoError(t, (&CacheSettings{Type: CacheTypeMemory, TTL: time.Second}).Validate())
	assert.Error(t, (&CacheSettings{Type: CacheTypeRedis}).Validate())
	assert.Error(t, (&CacheSettings{Type: "disk", TTL: time.Second}).Validate())
}

func TestSMSSettingsValidation(t *testing.T) {
	assert.NoError(t, (&SMSSettings{Dispatcher: SMSDispatcherLog}).Validate())
	assert.Error(t, (&SMSSettings{Dispatcher: SMSDispatcherNats}).Validate())
	assert.NoError(t, (&SMSSettings{Dispatcher: SMSDispatcherNats, NatsURL: "nats://localhost:4222", Subject: "sms.otp"}).Validate())
}
