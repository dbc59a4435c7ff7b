package retry

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

// Backoff 连续失败的时候等待时间越来越长，策略的重试次数用完之后一直按照最后一次的间隔等待。
// 非线程安全，只能在一个 goroutine 里面用
type Backoff struct {
	cfg  Config
	cur  retry.Strategy
	last time.Duration
}

func NewBackoff(cfg Config) (*Backoff, error) {
	s, err := NewRetry(cfg)
	if err != nil {
		return nil, err
	}
	return &Backoff{cfg: cfg, cur: s}, nil
}

func (b *Backoff) Next() time.Duration {
	next, ok := b.cur.Next()
	if ok {
		b.last = next
	}
	return b.last
}

// Reset 成功之后从头开始
func (b *Backoff) Reset() {
	s, err := NewRetry(b.cfg)
	if err != nil {
		// NewBackoff 的时候已经校验过配置了
		return
	}
	b.cur = s
	b.last = 0
}

// Wait 返回 false 表示 ctx 结束了
func (b *Backoff) Wait(ctx context.Context) bool {
	timer := time.NewTimer(b.Next())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
