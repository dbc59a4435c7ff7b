package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	successStatus = "success"
	errorStatus   = "error"
)

// Hook 按照命令统计 Redis 的耗时和错误
type Hook struct {
	commandDuration  *prometheus.HistogramVec
	pipelineDuration *prometheus.HistogramVec
	connections      *prometheus.CounterVec
}

// NewMetricsHook 同一个 namespace 重复创建会复用已经注册的指标
func NewMetricsHook(reg prometheus.Registerer, namespace string) *Hook {
	buckets := prometheus.ExponentialBuckets(0.0005, 2, 12)
	return &Hook{
		commandDuration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "command_duration_seconds",
			Help:      "Redis command execution time in seconds",
			Buckets:   buckets,
		}, []string{"command", "status"})),
		pipelineDuration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "pipeline_duration_seconds",
			Help:      "Redis pipeline execution time in seconds",
			Buckets:   buckets,
		}, []string{"status"})),
		connections: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "connections_total",
			Help:      "Total number of Redis connections created",
		}, []string{"status"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func status(err error) string {
	// key 不存在不算错误
	if err != nil && !errors.Is(err, redis.Nil) {
		return errorStatus
	}
	return successStatus
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name(), status(err)).Observe(time.Since(start).Seconds())
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == errorStatus {
				st = errorStatus
				break
			}
		}
		h.pipelineDuration.WithLabelValues(st).Observe(time.Since(start).Seconds())
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.connections.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

// WithMetrics 注册到默认的 prometheus registry
func WithMetrics(client *redis.Client, namespace string) *redis.Client {
	client.AddHook(NewMetricsHook(prometheus.DefaultRegisterer, namespace))
	return client
}
