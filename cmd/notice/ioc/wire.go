//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"gitee.com/flycash/notice-delivery/internal/api/web"
	"gitee.com/flycash/notice-delivery/internal/ioc"
	"gitee.com/flycash/notice-delivery/internal/repository"
	"gitee.com/flycash/notice-delivery/internal/repository/dao"
	"gitee.com/flycash/notice-delivery/internal/service/notice"
	"gitee.com/flycash/notice-delivery/internal/service/push"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitDistributedLock,
		ioc.InitIDGenerator,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitIdempotencyService,
		ioc.InitNoticeCache,
	)
	pendingSet = wire.NewSet(
		repository.NewPendingRepository,
		dao.NewPendingNoticeDAO,
	)
	noticeSvcSet = wire.NewSet(
		push.NewRegistry,
		notice.NewGuard,
		notice.NewProjector,
		notice.NewHandler,
		ioc.InitRouter,
	)
	transportSet = wire.NewSet(
		ioc.InitTransport,
		ioc.InitNoticeEventProducer,
	)
	webSet = wire.NewSet(
		ioc.InitJwtAuth,
		ioc.InitConnectLimiter,
		ioc.InitWebConfig,
		web.NewHandler,
		ioc.InitWebServer,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 离线通知
		pendingSet,

		// 通知处理
		noticeSvcSet,
		transportSet,

		// 后台任务
		ioc.InitPendingPurgeTask,
		ioc.InitTasks,

		// websocket 网关
		webSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
