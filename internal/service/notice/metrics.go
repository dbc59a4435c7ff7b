package notice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	consumeCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notice_consume_total",
			Help: "Total number of notice events handled, by outcome",
		},
		[]string{"outcome"},
	)

	deliveryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notice_delivery_total",
			Help: "Total number of notice deliveries, by outcome",
		},
		[]string{"outcome"},
	)

	drainCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notice_drained_total",
			Help: "Total number of pending notices delivered on reconnect",
		},
	)

	// 用户一直没上线，过了保留期被清理掉的离线通知
	purgeCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notice_pending_purged_total",
			Help: "Total number of undelivered pending notices removed after retention",
		},
	)
)
