package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"gitee.com/flycash/notice-delivery/internal/pkg/idempotent"
)

func InitIdempotencyService(rdb redis.Cmdable) idempotent.IdempotencyService {
	type Config struct {
		// redis 或者 local，local 只能单实例部署
		Type       string        `yaml:"type"`
		Expiration time.Duration `yaml:"expiration"`
	}
	cfg := Config{
		Type:       "redis",
		Expiration: 24 * time.Hour,
	}
	if err := econf.UnmarshalKey("notice.idempotent", &cfg); err != nil {
		panic(err)
	}
	if cfg.Type == "local" {
		return idempotent.NewLocalService(ca.New(cfg.Expiration, time.Minute), cfg.Expiration)
	}
	return idempotent.NewRedisService(rdb, cfg.Expiration)
}
