package sortedstorage

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisSortedStore manages sorted sets in Redis with TTL support.
type RedisSortedStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSortedStore initializes a RedisSortedStore with the provided Redis client and TTL.
func NewRedisSortedStore(client *redis.Client, ttlSeconds int) i.SortedStore {
	return &RedisSortedStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Add stores a member with a given score and sets expiration if necessary.
func (rs *RedisSortedStore) Add(ctx context.Context, key string, score float64, member string) error {
	_, err := rs.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	if rs.ttl > 0 {
		ttl, err := rs.client.TTL(ctx, key).Result()
		if err == nil && ttl == -1 {
			_ = rs.client.Expire(ctx, key, rs.ttl).Err()
		}
	}

	return nil
}

// Tops retrieves up to `amount` members with the lowest scores without removing them.
func (rs *RedisSortedStore) Tops(ctx context.Context, key string, amount int64) ([]dmn.Score, error) {
	if amount <= 0 {
		return nil, nil
	}

	zs, err := rs.client.ZRangeWithScores(ctx, key, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]dmn.Score, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			member = fmt.Sprint(z.Member)
		}
		scores = append(scores, dmn.Score{Member: member, Value: z.Score})
	}
	return scores, nil
}

// Count returns the number of members in the sorted set.
func (rs *RedisSortedStore) Count(ctx context.Context, key string) int64 {
	return rs.client.ZCard(ctx, key).Val()
}
