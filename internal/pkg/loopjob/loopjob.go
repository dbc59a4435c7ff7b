package loopjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

// 没有分布式任务调度平台，多个实例靠分布式锁保证同一时刻只有一个在跑

const (
	defaultTimeout  = time.Second * 3
	defaultInterval = time.Minute
)

type InfiniteLoop struct {
	dclient dlock.Client
	key     string
	logger  *elog.Component
	biz     func(ctx context.Context) error

	// 锁的过期时间，也是没拿到锁之后的等待时间
	interval time.Duration
}

func NewInfiniteLoop(
	dclient dlock.Client,
	// 注意当 ctx 被取消的时候，就会退出全部循环
	biz func(ctx context.Context) error,
	key string,
) *InfiniteLoop {
	return &InfiniteLoop{
		dclient:  dclient,
		key:      key,
		logger:   elog.DefaultLogger.With(elog.String("key", key)),
		biz:      biz,
		interval: defaultInterval,
	}
}

func (l *InfiniteLoop) WithInterval(interval time.Duration) *InfiniteLoop {
	if interval > 0 {
		l.interval = interval
	}
	return l
}

// Run 阻塞直到 ctx 被取消
func (l *InfiniteLoop) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
		lock, err := l.dclient.NewLock(ctx, l.key, l.interval)
		if err != nil {
			l.logger.Error("初始化分布式锁失败，重试", elog.FieldErr(err))
			l.sleep(ctx)
			continue
		}

		lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		// 锁被别的实例持有也会走到这里
		err = lock.Lock(lockCtx)
		cancel()
		if err != nil {
			l.logger.Debug("没有抢到分布式锁", elog.FieldErr(err))
			l.sleep(ctx)
			continue
		}

		err = l.bizLoop(ctx, lock)
		if err != nil && !isCtxErr(err) {
			l.logger.Error("执行业务失败，将执行重试", elog.FieldErr(err))
		}
		// ctx 这时候可能已经被取消了
		unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		//nolint:contextcheck // 原始 ctx 可能已被取消，但仍需尝试解锁
		unErr := lock.Unlock(unCtx)
		cancel()
		if unErr != nil {
			l.logger.Error("释放分布式锁失败", elog.FieldErr(unErr))
		}
		if isCtxErr(ctx.Err()) {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
		l.sleep(ctx)
	}
}

func (l *InfiniteLoop) bizLoop(ctx context.Context, lock dlock.Lock) error {
	for {
		err := l.biz(ctx)
		if err != nil {
			l.logger.Error("业务执行失败", elog.FieldErr(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		refCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		err = lock.Refresh(refCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("分布式锁续约失败 %w", err)
		}
	}
}

func (l *InfiniteLoop) sleep(ctx context.Context) {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func isCtxErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
