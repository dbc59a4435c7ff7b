package idempotent

import (
	"context"
	"time"

	ca "github.com/patrickmn/go-cache"
)

var _ IdempotencyService = (*LocalIdempotencyService)(nil)

// LocalIdempotencyService 进程内实现，只适合单实例部署和测试
type LocalIdempotencyService struct {
	c          *ca.Cache
	expiration time.Duration
}

func NewLocalService(c *ca.Cache, expiration time.Duration) *LocalIdempotencyService {
	return &LocalIdempotencyService{
		c:          c,
		expiration: expiration,
	}
}

// Claim go-cache 的 Add 在 key 已经存在且未过期的时候返回 error，本身就是原子的
func (s *LocalIdempotencyService) Claim(_ context.Context, key string) (bool, error) {
	if err := s.c.Add(key, struct{}{}, s.expiration); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *LocalIdempotencyService) Release(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
