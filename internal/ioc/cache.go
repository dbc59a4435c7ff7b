package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"

	"gitee.com/flycash/notice-delivery/internal/repository/cache"
	rediscache "gitee.com/flycash/notice-delivery/internal/repository/cache/redis"
)

func InitNoticeCache(rdb redis.Cmdable) cache.NoticeCache {
	recentCap := econf.GetInt("notice.recentCap")
	if recentCap <= 0 {
		recentCap = cache.DefaultRecentCap
	}
	return rediscache.NewNoticeCache(rdb, recentCap)
}
