//go:build integration
// +build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_SetGetDeletePrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	s := NewRedisStore(client, testutil.SetupTestLogger(t))
	base := "/test-" + uuid.NewString()

	require.NoError(t, s.Set(ctx, base+"/users?page=1", []byte("list"), time.Minute))
	require.NoError(t, s.Set(ctx, base+"/users/u-1", []byte("detail"), time.Minute))
	require.NoError(t, s.Set(ctx, base+"/events", []byte("events"), time.Minute))

	v, ok, err := s.Get(ctx, base+"/users/u-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "detail", string(v))

	require.NoError(t, s.DeletePrefix(ctx, base+"/users"))

	_, ok, err = s.Get(ctx, base+"/users?page=1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Get(ctx, base+"/events")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.DeletePrefix(ctx, base))
}
