//go:build integration
// +build integration

package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "localhost:6379"

func setupRedisProvider(t *testing.T, maxAttempts int) *RedisProvider {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err(), "redis must be reachable at "+testRedisAddr)

	settings := &config.OTPSettings{
		Provider:           config.OTPProviderRedis,
		Length:             6,
		TTL:                time.Minute,
		MaxAttempts:        maxAttempts,
		SendRatePerMinute:  3,
		DefaultCountryCode: "91",
	}
	p, err := NewRedisProvider(client, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return p
}

func TestRedisProvider_GenerateAndVerify(t *testing.T) {
	p := setupRedisProvider(t, 5)
	ctx := context.Background()
	phone := uuid.NewString()

	code, err := p.Generate(ctx, phone)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, p.Verify(ctx, phone, code))

	// consumed on success
	assert.True(t, errors.Is(p.Verify(ctx, phone, code), apperr.ErrInvalidOTP))
}

func TestRedisProvider_WrongCodeThenLockout(t *testing.T) {
	p := setupRedisProvider(t, 2)
	ctx := context.Background()
	phone := uuid.NewString()

	code, err := p.Generate(ctx, phone)
	require.NoError(t, err)

	assert.True(t, errors.Is(p.Verify(ctx, phone, "000000x"), apperr.ErrInvalidOTP))
	assert.True(t, errors.Is(p.Verify(ctx, phone, "000000x"), apperr.ErrInvalidOTP))
	assert.True(t, errors.Is(p.Verify(ctx, phone, code), apperr.ErrRateLimited))

	// a new code resets the attempt counter
	code, err = p.Generate(ctx, phone)
	require.NoError(t, err)
	assert.NoError(t, p.Verify(ctx, phone, code))
}
