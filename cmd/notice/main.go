package main

import (
	"context"
	"time"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/notice-delivery/cmd/notice/ioc"
	prodioc "gitee.com/flycash/notice-delivery/internal/ioc"
)

func main() {
	// 配置和日志在 ego.New 里面加载，必须最先调用
	egoApp := ego.New()

	tp := prodioc.InitZipkinTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			elog.Error("关闭 tracer 失败", elog.FieldErr(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := ioc.InitApp()
	app.StartTasks(ctx)

	if err := egoApp.Serve(app.Web).Run(); err != nil {
		elog.Error("startup", elog.FieldErr(err))
	}
	// 先停消费，等消费者退出之后再关连接
	cancel()
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()
	if err := app.Close(closeCtx); err != nil {
		elog.Error("关闭应用失败", elog.FieldErr(err))
	}
}
