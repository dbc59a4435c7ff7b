package mqx2

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Producer *kafka.Producer 里面发送消息用到的部分
//
//go:generate mockgen -source=./general_producer.go -package=mqx2mocks -destination=./mocks/producer.mock.go Producer
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

var _ Producer = (*kafka.Producer)(nil)

// SyncProduce 等待 broker 确认之后才返回
func SyncProduce(ctx context.Context, p Producer, msg *kafka.Message) error {
	deliveryChan := make(chan kafka.Event, 1)
	if err := p.Produce(msg, deliveryChan); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("未知的投递结果 %v", e)
		}
		return m.TopicPartition.Error
	}
}

type GeneralProducer[T any] struct {
	producer Producer
	topic    string
	keyFunc  func(evt T) string
}

func NewGeneralProducer[T any](producer Producer, topic string) (*GeneralProducer[T], error) {
	if producer == nil {
		return nil, fmt.Errorf("producer 不能为 nil")
	}
	return &GeneralProducer[T]{
		producer: producer,
		topic:    topic,
	}, nil
}

// WithKey 同一个 key 的消息会落到同一个分区
func (p *GeneralProducer[T]) WithKey(keyFunc func(evt T) string) *GeneralProducer[T] {
	p.keyFunc = keyFunc
	return p
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化消息失败 %w", err)
	}
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Value: val,
	}
	if p.keyFunc != nil {
		msg.Key = []byte(p.keyFunc(evt))
	}
	return SyncProduce(ctx, p.producer, msg)
}
