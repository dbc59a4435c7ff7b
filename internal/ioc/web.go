package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"

	"gitee.com/flycash/notice-delivery/internal/api/web"
	"gitee.com/flycash/notice-delivery/internal/pkg/ratelimit"
)

func InitJwtAuth() *web.JwtAuth {
	key := econf.GetString("jwt.key")
	if key == "" {
		panic("jwt.key 没有配置")
	}
	return web.NewJwtAuth(key)
}

// InitConnectLimiter 限制单个用户建立连接的频率
func InitConnectLimiter(rdb redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	cfg := Config{
		Interval: time.Minute,
		Rate:     30,
	}
	if err := econf.UnmarshalKey("notice.connectLimit", &cfg); err != nil {
		panic(err)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(rdb, cfg.Interval, cfg.Rate)
}

func InitWebConfig() web.Config {
	var cfg web.Config
	if err := econf.UnmarshalKey("notice.websocket", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitWebServer(hdl *web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	hdl.PublicRoutes(server.Engine)
	return server
}
