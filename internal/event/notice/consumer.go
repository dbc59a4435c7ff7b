package notice

import (
	"context"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/pkg/retry"
)

const (
	defaultWorkers = 3
	minWorkers     = 2
	maxWorkers     = 5

	defaultGroupID      = "notice"
	defaultBatchSize    = 50
	defaultBatchTimeout = time.Second
	requeueTimeout      = 3 * time.Second
)

// Handler 处理一条通知事件，返回确认还是重新入队
type Handler interface {
	Handle(ctx context.Context, n domain.Notice) domain.Outcome
}

type HandlerFunc func(ctx context.Context, n domain.Notice) domain.Outcome

func (f HandlerFunc) Handle(ctx context.Context, n domain.Notice) domain.Outcome {
	return f(ctx, n)
}

type ConsumerConfig struct {
	GroupID string `yaml:"groupId"`
	// 并发处理的协程数量，限制在 [2, 5]
	Workers int `yaml:"workers"`
	// 只有 kafka 用到
	BatchSize    int           `yaml:"batchSize"`
	BatchTimeout time.Duration `yaml:"batchTimeout"`
	// 重新入队之后的退避策略
	Backoff retry.Config `yaml:"backoff"`
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.GroupID == "" {
		c.GroupID = defaultGroupID
	}
	switch {
	case c.Workers == 0:
		c.Workers = defaultWorkers
	case c.Workers < minWorkers:
		c.Workers = minWorkers
	case c.Workers > maxWorkers:
		c.Workers = maxWorkers
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.BatchTimeout <= 0 {
		c.BatchTimeout = defaultBatchTimeout
	}
	if c.Backoff.Type == "" {
		c.Backoff = retry.DefaultConfig()
	}
	return c
}
