package ioc

import (
	"github.com/gotomicro/ego/core/econf"

	"gitee.com/flycash/notice-delivery/internal/repository"
	"gitee.com/flycash/notice-delivery/internal/service/notice"
	"gitee.com/flycash/notice-delivery/internal/service/push"
)

func InitRouter(registry *push.Registry, repo repository.PendingRepository) *notice.Router {
	r := notice.NewRouter(registry, repo)
	if size := econf.GetInt("notice.drainBatchSize"); size > 0 {
		return r.WithDrainBatchSize(size)
	}
	return r
}
