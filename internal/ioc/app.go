package ioc

import (
	"context"
	"fmt"
	"sync"

	"github.com/gotomicro/ego/server/egin"
	"github.com/hashicorp/go-multierror"
)

type App struct {
	Web       *egin.Component
	Tasks     []Task
	Transport *Transport

	wg sync.WaitGroup `wire:"-"`
}

// StartTasks 每个任务一个协程，ctx 取消之后任务自己退出
func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		a.wg.Add(1)
		go func(t Task) {
			defer a.wg.Done()
			t.Start(ctx)
		}(t)
	}
}

// Close 先等任务全部退出再关闭连接，任务的 ctx 要先取消。
// 等不到任务退出的时候不关连接，还在用的客户端不能关。
func (a *App) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("等待后台任务退出超时: %w", ctx.Err())
	}

	var err error
	if a.Transport != nil {
		if er := a.Transport.Close(); er != nil {
			err = multierror.Append(err, er)
		}
	}
	return err
}
