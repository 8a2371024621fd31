package lock

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultExpiry = 10 * time.Second
	unlockTimeout = time.Second
)

// RedisLocker hands out redsync mutexes keyed by resource name.
type RedisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

// NewRedisLocker initializes a RedisLocker whose locks expire after
// expirySeconds unless released earlier.
func NewRedisLocker(client *redis.Client, expirySeconds int) i.Locker {
	expiry := time.Duration(expirySeconds) * time.Second
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		rs:     redsync.New(pool),
		expiry: expiry,
	}
}

// Lock acquires key, retrying until it is free or ctx is done.
func (rl *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := rl.rs.NewMutex(key, redsync.WithExpiry(rl.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(ctx)
	}, nil
}
