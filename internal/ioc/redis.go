package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"

	"gitee.com/flycash/notice-delivery/internal/pkg/redis/metrics"
	"gitee.com/flycash/notice-delivery/internal/pkg/redis/tracing"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cmd = tracing.WithTracing(cmd)
	cmd = metrics.WithMetrics(cmd, "notice")
	return cmd
}

func InitRedisCmd(client *redis.Client) redis.Cmdable {
	return client
}
