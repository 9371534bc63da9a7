package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper drops redelivered webhook updates.
type Deduper interface {
	// Seen marks the update id and reports whether it was already marked.
	Seen(ctx context.Context, updateID int64) (bool, error)
}

type redisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper builds a Deduper backed by SET NX with a TTL. Chat
// platforms redeliver webhooks for a bounded window, so a short TTL is
// enough to absorb retries without growing the keyspace.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) Deduper {
	return &redisDeduper{client: client, ttl: ttl}
}

func (d *redisDeduper) Seen(ctx context.Context, updateID int64) (bool, error) {
	key := fmt.Sprintf("swagabot:update:%d", updateID)
	set, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
