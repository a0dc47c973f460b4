//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetExpire(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "/api/v1/users?page=1", []byte("a"), 30*time.Second))

	v, ok, err := s.Get(ctx, "/api/v1/users?page=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), v)

	now = now.Add(31 * time.Second)
	_, ok, err = s.Get(ctx, "/api/v1/users?page=1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_SetSweepsExpiredEntries(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for _, key := range []string{"/api/v1/users?page=1", "/api/v1/users?page=2", "/api/v1/events?search=jazz"} {
		require.NoError(t, s.Set(ctx, key, []byte("x"), 30*time.Second))
	}
	require.NoError(t, s.Set(ctx, "/api/v1/dashboard", []byte("d"), 5*time.Minute))
	assert.Equal(t, 4, s.Len())

	// expired, but not yet a full interval since the first sweep
	now = now.Add(45 * time.Second)
	require.NoError(t, s.Set(ctx, "/api/v1/payouts", []byte("p"), 5*time.Minute))
	assert.Equal(t, 5, s.Len())

	now = now.Add(20 * time.Second)
	require.NoError(t, s.Set(ctx, "/api/v1/tickets", []byte("t"), 5*time.Minute))
	assert.Equal(t, 3, s.Len())

	_, ok, err := s.Get(ctx, "/api/v1/dashboard")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_SizeCap(t *testing.T) {
	s := NewMemoryStore()
	s.maxEntries = 3
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "/api/v1/users", []byte("u"), time.Minute))
	require.NoError(t, s.Set(ctx, "/api/v1/events", []byte("e"), 10*time.Second))
	require.NoError(t, s.Set(ctx, "/api/v1/payouts", []byte("p"), 2*time.Minute))

	// overwriting an existing key never evicts
	require.NoError(t, s.Set(ctx, "/api/v1/users", []byte("u2"), time.Minute))
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.Set(ctx, "/api/v1/tickets", []byte("t"), time.Minute))
	assert.Equal(t, 3, s.Len())

	_, ok, _ := s.Get(ctx, "/api/v1/events")
	assert.False(t, ok)
	v, ok, _ := s.Get(ctx, "/api/v1/users")
	assert.True(t, ok)
	assert.Equal(t, []byte("u2"), v)

	// an expired entry makes room before anything live is evicted
	now = now.Add(61 * time.Second)
	require.NoError(t, s.Set(ctx, "/api/v1/dashboard", []byte("d"), time.Minute))
	_, ok, _ = s.Get(ctx, "/api/v1/payouts")
	assert.True(t, ok)
	_, ok, _ = s.Get(ctx, "/api/v1/dashboard")
	assert.True(t, ok)
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, key := range []string{"/api/v1/users", "/api/v1/users/u-1", "/api/v1/events", "/api/v1/dashboard"} {
		require.NoError(t, s.Set(ctx, key, []byte("x"), time.Minute))
	}

	require.NoError(t, s.DeletePrefix(ctx, "/api/v1/users", "/api/v1/dashboard"))

	_, ok, _ := s.Get(ctx, "/api/v1/users/u-1")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "/api/v1/events")
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestNoopStore(t *testing.T) {
	var s Store = NoopStore{}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStore(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	s, err := NewStore(&config.CacheSettings{Type: config.CacheTypeNone}, nil, log)
	require.NoError(t, err)
	assert.IsType(t, NoopStore{}, s)

	s, err = NewStore(&config.CacheSettings{Type: config.CacheTypeMemory, TTL: time.Minute}, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = NewStore(&config.CacheSettings{Type: config.CacheTypeRedis, TTL: time.Minute}, nil, log)
	assert.Error(t, err)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `/api/v1/users\?search=a\*`, escapeGlob("/api/v1/users?search=a*"))
}
