package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ IdempotencyService = (*RedisIdempotencyService)(nil)

type RedisIdempotencyService struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisService(client redis.Cmdable, expiration time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client:     client,
		expiration: expiration,
	}
}

// Claim 对应 SET key 1 NX EX，多个消费者并发抢同一个 key 只会有一个成功
func (s *RedisIdempotencyService) Claim(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, key, 1, s.expiration).Result()
}

func (s *RedisIdempotencyService) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
