package notice

import (
	"context"
	"time"

	"gitee.com/flycash/notice-delivery/internal/pkg/loopjob"
	"gitee.com/flycash/notice-delivery/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const pendingPurgeKey = "notice_pending_purge"

type PurgeConfig struct {
	// 离线通知保留多久
	Retention time.Duration `yaml:"retention"`
	BatchSize int           `yaml:"batchSize"`
	// 清理得不多的时候休息多久
	Idle time.Duration `yaml:"idle"`
}

func (c PurgeConfig) withDefaults() PurgeConfig {
	if c.Retention <= 0 {
		c.Retention = 7 * 24 * time.Hour
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.Idle <= 0 {
		c.Idle = 10 * time.Second
	}
	return c
}

// PendingPurgeTask 用户一直不上线的话，离线通知不能无限堆积
type PendingPurgeTask struct {
	dclient dlock.Client
	repo    repository.PendingRepository
	cfg     PurgeConfig
	logger  *elog.Component
}

func NewPendingPurgeTask(dclient dlock.Client, repo repository.PendingRepository, cfg PurgeConfig) *PendingPurgeTask {
	return &PendingPurgeTask{
		dclient: dclient,
		repo:    repo,
		cfg:     cfg.withDefaults(),
		logger:  elog.DefaultLogger,
	}
}

func (t *PendingPurgeTask) Start(ctx context.Context) {
	loopjob.NewInfiniteLoop(t.dclient, t.Purge, pendingPurgeKey).Run(ctx)
}

func (t *PendingPurgeTask) Purge(ctx context.Context) error {
	cnt, err := t.repo.PurgeBefore(ctx, time.Now().Add(-t.cfg.Retention), t.cfg.BatchSize)
	if err != nil {
		return err
	}
	if cnt > 0 {
		purgeCounter.Add(float64(cnt))
		t.logger.Warn("清理过期离线通知，这些通知没有推送出去", elog.Int64("count", cnt))
	}
	// 没有多少过期的，休息一下
	if cnt < int64(t.cfg.BatchSize) {
		timer := time.NewTimer(t.cfg.Idle)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	return nil
}
