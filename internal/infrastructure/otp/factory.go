package otp

import (
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// NewProvider builds the OTP provider selected by settings. redisClient is only used by the redis provider.
func NewProvider(settings *config.OTPSettings, redisClient *redis.Client, logger logger.Logger) (auth.OTPProvider, error) {
	switch settings.Provider {
	case config.OTPProviderDev:
		return NewDevProvider(logger), nil
	case config.OTPProviderRedis:
		return NewRedisProvider(redisClient, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported otp provider: %s", settings.Provider)
	}
}

// NewDispatcher builds the SMS dispatcher selected by settings
func NewDispatcher(settings *config.SMSSettings, logger logger.Logger) (auth.SMSDispatcher, error) {
	switch settings.Dispatcher {
	case config.SMSDispatcherLog:
		return NewLogDispatcher(logger), nil
	case config.SMSDispatcherNats:
		return NewNatsDispatcher(settings.NatsURL, settings.Subject, logger)
	default:
		return nil, fmt.Errorf("unsupported sms dispatcher: %s", settings.Dispatcher)
	}
}
