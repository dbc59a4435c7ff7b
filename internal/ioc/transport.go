package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"

	noticeevt "gitee.com/flycash/notice-delivery/internal/event/notice"
	"gitee.com/flycash/notice-delivery/internal/service/notice"
)

const (
	transportMemory = "memory"
	transportKafka  = "kafka"
)

// Transport 通知事件的收发两端，由 notice.transport 决定用哪一种实现
type Transport struct {
	Producer noticeevt.NoticeEventProducer
	Consumer Task
	close    func() error
}

func (t *Transport) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

func InitTransport(handler *notice.Handler) *Transport {
	type Config struct {
		Type       string `yaml:"type"`
		Partitions int    `yaml:"partitions"`
		// kafka 专用
		Addr     string                   `yaml:"addr"`
		Consumer noticeevt.ConsumerConfig `yaml:"consumer"`
	}
	cfg := Config{
		Type:       transportMemory,
		Partitions: 1,
	}
	if err := econf.UnmarshalKey("notice.transport", &cfg); err != nil {
		panic(err)
	}
	var (
		t   *Transport
		err error
	)
	switch cfg.Type {
	case transportMemory:
		t, err = initMemoryTransport(handler, cfg.Partitions, cfg.Consumer)
	case transportKafka:
		t, err = initKafkaTransport(handler, cfg.Addr, cfg.Consumer)
	default:
		err = fmt.Errorf("未知的通知事件传输类型 %s", cfg.Type)
	}
	if err != nil {
		panic(err)
	}
	return t
}

func InitNoticeEventProducer(t *Transport) noticeevt.NoticeEventProducer {
	return t.Producer
}

func initMemoryTransport(handler *notice.Handler, partitions int, cfg noticeevt.ConsumerConfig) (*Transport, error) {
	q := memory.NewMQ()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := q.CreateTopic(ctx, noticeevt.EventName, partitions); err != nil {
		return nil, err
	}
	return newMQTransport(handler, q, cfg)
}

func newMQTransport(handler *notice.Handler, q mq.MQ, cfg noticeevt.ConsumerConfig) (*Transport, error) {
	producer, err := noticeevt.NewNoticeEventProducer(q)
	if err != nil {
		return nil, err
	}
	consumer, err := noticeevt.NewMQConsumer(handler, q, cfg)
	if err != nil {
		return nil, err
	}
	return &Transport{
		Producer: producer,
		Consumer: consumer,
		close:    q.Close,
	}, nil
}

func initKafkaTransport(handler *notice.Handler, addr string, cfg noticeevt.ConsumerConfig) (*Transport, error) {
	kp, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
	})
	if err != nil {
		return nil, fmt.Errorf("创建生产者失败: %w", err)
	}
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "notice"
	}
	kc, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  addr,
		"group.id":           groupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		kp.Close()
		return nil, fmt.Errorf("创建消费者失败: %w", err)
	}
	producer, err := noticeevt.NewKafkaNoticeEventProducer(kp)
	if err != nil {
		return nil, err
	}
	consumer, err := noticeevt.NewKafkaConsumer(handler, kc, kp, cfg)
	if err != nil {
		return nil, err
	}
	return &Transport{
		Producer: producer,
		Consumer: consumer,
		close: func() error {
			const flushTimeoutMs = 3000
			kp.Flush(flushTimeoutMs)
			kp.Close()
			return kc.Close()
		},
	}, nil
}
