package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig is the complete configuration of the admin REST API and CLI.
type RestConfig struct {
	Port        string           `mapstructure:"port" validate:"required,numeric"`
	Environment string           `mapstructure:"environment" validate:"required,oneof=development staging production"`
	Database    DatabaseSettings `mapstructure:"database"`
	Logger      LoggerSettings   `mapstructure:"logger"`
	Session     SessionSettings  `mapstructure:"session"`
	OTP         OTPSettings      `mapstructure:"otp"`
	Redis       RedisSettings    `mapstructure:"redis"`
	Cache       CacheSettings    `mapstructure:"cache"`
	SMS         SMSSettings      `mapstructure:"sms"`
	Mailer      MailerSettings   `mapstructure:"mailer"`
	Finance     FinanceSettings  `mapstructure:"finance"`
	CORS        CORSSettings     `mapstructure:"cors"`
}

// IsProduction reports whether the service runs in the production environment.
func (c *RestConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// NeedsRedis reports whether any configured component talks to redis.
func (c *RestConfig) NeedsRedis() bool {
	return c.OTP.Provider == OTPProviderRedis || c.Cache.Type == CacheTypeRedis
}

// Validate checks the whole configuration, including cross-section rules.
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port", "Environment"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Database, &c.Logger, &c.Session, &c.OTP, &c.Cache, &c.SMS, &c.Mailer, &c.Finance, &c.CORS,
	}
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	if c.NeedsRedis() {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}

	if c.IsProduction() && c.OTP.Provider == OTPProviderDev {
		return errors.New("the dev OTP provider is not allowed in production")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", EnvironmentDevelopment)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.cookie_name", "admin_session")
	v.SetDefault("otp.provider", OTPProviderDev)
	v.SetDefault("otp.length", 4)
	v.SetDefault("otp.ttl", "5m")
	v.SetDefault("otp.max_attempts", 5)
	v.SetDefault("otp.send_rate_per_minute", 3)
	v.SetDefault("otp.default_country_code", "91")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("cache.type", CacheTypeMemory)
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("sms.dispatcher", SMSDispatcherLog)
	v.SetDefault("sms.subject", "sms.otp")
	v.SetDefault("mailer.type", MailerTypeLog)
	v.SetDefault("finance.platform_fee_percent", 5)
	v.SetDefault("finance.gst_percent", 18)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
}

// InitializeRestConfig loads the configuration file at path, applies ADMIN_ environment
// overrides and validates the result. A missing file is tolerated; defaults and the
// environment then carry the configuration.
func InitializeRestConfig(path string) (*RestConfig, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range []string{"database.type", "database.dsn", "database.name", "session.secret", "redis.password", "mailer.api_key", "mailer.from_email", "sms.nats_url"} {
		_ = v.BindEnv(key)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
