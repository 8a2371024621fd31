package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, 5)

	t.Run("Lock and release", func(t *testing.T) {
		unlock, err := locker.Lock(context.Background(), "maze:a:lock")
		require.NoError(t, err)
		assert.True(t, mr.Exists("maze:a:lock"))

		unlock()
		assert.False(t, mr.Exists("maze:a:lock"))
	})

	t.Run("Held lock blocks until ctx is done", func(t *testing.T) {
		unlock, err := locker.Lock(context.Background(), "maze:b:lock")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, "maze:b:lock")
		assert.Error(t, err)
	})

	t.Run("Distinct keys do not contend", func(t *testing.T) {
		unlockA, err := locker.Lock(context.Background(), "maze:c:lock")
		require.NoError(t, err)
		defer unlockA()

		unlockB, err := locker.Lock(context.Background(), "maze:d:lock")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("Default expiry", func(t *testing.T) {
		l := NewRedisLocker(client, 0).(*RedisLocker)
		assert.Equal(t, defaultExpiry, l.expiry)
	})
}
