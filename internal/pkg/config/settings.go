package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Deployment environments
const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

// OTP provider types
const (
	OTPProviderDev   = "dev"
	OTPProviderRedis = "redis"
)

// Route cache types
const (
	CacheTypeNone   = "none"
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// SMS dispatcher types
const (
	SMSDispatcherLog  = "log"
	SMSDispatcherNats = "nats"
)

// Mailer types
const (
	MailerTypeLog        = "log"
	MailerTypeMailerSend = "mailersend"
)

// SessionSettings configures the signed admin session.
type SessionSettings struct {
	Secret       string        `mapstructure:"secret" validate:"required,min=32"`
	TTL          time.Duration `mapstructure:"ttl" validate:"required"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// OTPSettings configures one-time password issuance and verification.
type OTPSettings struct {
	Provider           string        `mapstructure:"provider" validate:"required,oneof=dev redis"`
	Length             int           `mapstructure:"length" validate:"required,min=4,max=8"`
	TTL                time.Duration `mapstructure:"ttl" validate:"required"`
	MaxAttempts        int           `mapstructure:"max_attempts" validate:"required,min=1"`
	SendRatePerMinute  int           `mapstructure:"send_rate_per_minute" validate:"required,min=1"`
	DefaultCountryCode string        `mapstructure:"default_country_code" validate:"required,numeric"`
}

// RedisSettings holds the redis connection used by the OTP store and the route cache.
type RedisSettings struct {
	Addr     string `mapstructure:"addr" validate:"required,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// CacheSettings configures caching of admin GET responses.
type CacheSettings struct {
	Type string        `mapstructure:"type" validate:"required,oneof=none memory redis"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// SMSSettings configures how OTP messages leave the service.
type SMSSettings struct {
	Dispatcher string `mapstructure:"dispatcher" validate:"required,oneof=log nats"`
	NatsURL    string `mapstructure:"nats_url" validate:"required_if=Dispatcher nats"`
	Subject    string `mapstructure:"subject" validate:"required_if=Dispatcher nats"`
}

// MailerSettings configures outgoing mail for demo scheduling.
type MailerSettings struct {
	Type      string `mapstructure:"type" validate:"required,oneof=log mailersend"`
	APIKey    string `mapstructure:"api_key" validate:"required_if=Type mailersend"`
	FromEmail string `mapstructure:"from_email" validate:"omitempty,email"`
	FromName  string `mapstructure:"from_name"`
}

// CORSSettings lists the browser origins allowed to call the API with credentials.
type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,url,startswith=http"`
}

// FinanceSettings holds the platform fee and GST rates in percent.
type FinanceSettings struct {
	PlatformFeePercent float64 `mapstructure:"platform_fee_percent" validate:"min=0,max=100"`
	GSTPercent         float64 `mapstructure:"gst_percent" validate:"min=0,max=100"`
}

func validateStruct(name string, s interface{}) error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error { return validateStruct("SessionSettings", s) }

// Validate checks that all fields in OTPSettings are valid
func (s *OTPSettings) Validate() error { return validateStruct("OTPSettings", s) }

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error { return validateStruct("RedisSettings", s) }

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	if err := validateStruct("CacheSettings", s); err != nil {
		return err
	}
	if s.Type != CacheTypeNone && s.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive when caching is enabled")
	}
	return nil
}

// Validate checks that all fields in SMSSettings are valid
func (s *SMSSettings) Validate() error { return validateStruct("SMSSettings", s) }

// Validate checks that all fields in MailerSettings are valid
func (s *MailerSettings) Validate() error { return validateStruct("MailerSettings", s) }

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error { return validateStruct("CORSSettings", s) }

// Validate checks that all fields in FinanceSettings are valid
func (s *FinanceSettings) Validate() error { return validateStruct("FinanceSettings", s) }
