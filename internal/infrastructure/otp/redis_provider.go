package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	codeKeyPrefix     = "otp:code:"
	attemptsKeyPrefix = "otp:attempts:"
)

// RedisProvider stores random codes in redis with a TTL and a bounded number of verification attempts.
type RedisProvider struct {
	client      *redis.Client
	length      int
	ttl         time.Duration
	maxAttempts int64
	logger      logger.Logger
}

// NewRedisProvider creates a RedisProvider
func NewRedisProvider(client *redis.Client, settings *config.OTPSettings, logger logger.Logger) (*RedisProvider, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &RedisProvider{
		client:      client,
		length:      settings.Length,
		ttl:         settings.TTL,
		maxAttempts: int64(settings.MaxAttempts),
		logger:      logger,
	}, nil
}

// Generate stores a fresh code for the phone, replacing any previous one and resetting attempts
func (p *RedisProvider) Generate(ctx context.Context, phoneNo string) (string, error) {
	code, err := randomDigits(p.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	pipe := p.client.TxPipeline()
	pipe.Set(ctx, codeKeyPrefix+phoneNo, code, p.ttl)
	pipe.Del(ctx, attemptsKeyPrefix+phoneNo)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}

	p.logger.Info("Stored OTP for ", phoneNo)
	return code, nil
}

// Verify consumes the stored code when it matches
func (p *RedisProvider) Verify(ctx context.Context, phoneNo, code string) error {
	attemptsKey := attemptsKeyPrefix + phoneNo
	codeKey := codeKeyPrefix + phoneNo

	attempts, err := p.client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count attempt: %w", err)
	}
	if attempts == 1 {
		p.client.Expire(ctx, attemptsKey, p.ttl)
	}
	if attempts > p.maxAttempts {
		return fmt.Errorf("%w: too many otp attempts", apperr.ErrRateLimited)
	}

	stored, err := p.client.Get(ctx, codeKey).Result()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: no pending code", apperr.ErrInvalidOTP)
	}
	if err != nil {
		return fmt.Errorf("failed to load code: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return fmt.Errorf("%w: code does not match", apperr.ErrInvalidOTP)
	}

	if err := p.client.Del(ctx, codeKey, attemptsKey).Err(); err != nil {
		p.logger.Warn("Failed to delete consumed OTP for ", phoneNo, ": ", err)
	}
	return nil
}

// Length is the number of digits of generated codes
func (p *RedisProvider) Length() int {
	return p.length
}

func randomDigits(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}
	return sb.String(), nil
}
