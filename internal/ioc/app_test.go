package ioc

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowTask 取消之后还要一段时间才能退出，比如正在重新入队
type slowTask struct {
	delay  time.Duration
	exited atomic.Bool
}

func (t *slowTask) Start(ctx context.Context) {
	<-ctx.Done()
	time.Sleep(t.delay)
	t.exited.Store(true)
}

// stuckTask 永远不退出
type stuckTask struct{}

func (stuckTask) Start(context.Context) {
	select {}
}

func TestApp_CloseWaitsForTasks(t *testing.T) {
	t.Parallel()
	task := &slowTask{delay: 100 * time.Millisecond}
	var closedAfterExit atomic.Bool
	var closed atomic.Int32
	app := &App{
		Tasks: []Task{task},
		Transport: &Transport{
			close: func() error {
				closed.Add(1)
				closedAfterExit.Store(task.exited.Load())
				return errors.New("close kafka")
			},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.StartTasks(ctx)
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	err := app.Close(closeCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close kafka")
	assert.Equal(t, int32(1), closed.Load())
	assert.True(t, closedAfterExit.Load())
}

func TestApp_CloseTimeout(t *testing.T) {
	t.Parallel()
	var closed atomic.Int32
	app := &App{
		Tasks: []Task{stuckTask{}},
		Transport: &Transport{
			close: func() error {
				closed.Add(1)
				return nil
			},
		},
	}
	app.StartTasks(context.Background())

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer closeCancel()
	err := app.Close(closeCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// 任务还在用连接，不能关
	assert.Equal(t, int32(0), closed.Load())
}
