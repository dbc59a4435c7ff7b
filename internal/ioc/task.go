package ioc

import (
	"context"

	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"

	"gitee.com/flycash/notice-delivery/internal/repository"
	"gitee.com/flycash/notice-delivery/internal/service/notice"
)

// Task 跟着应用一起启动，Start 阻塞到 ctx 取消并且任务退出为止
type Task interface {
	Start(ctx context.Context)
}

func InitPendingPurgeTask(dclient dlock.Client, repo repository.PendingRepository) *notice.PendingPurgeTask {
	var cfg notice.PurgeConfig
	if err := econf.UnmarshalKey("notice.purge", &cfg); err != nil {
		panic(err)
	}
	return notice.NewPendingPurgeTask(dclient, repo, cfg)
}

func InitTasks(t1 *notice.PendingPurgeTask, transport *Transport) []Task {
	return []Task{
		t1,
		transport.Consumer,
	}
}
