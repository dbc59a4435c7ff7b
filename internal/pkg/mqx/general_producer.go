package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// GeneralProducer 把事件序列化成 JSON 发到固定的 topic 上
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	keyFunc  func(evt T) string
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建生产者失败 topic=%s %w", topic, err)
	}
	return &GeneralProducer[T]{
		producer: p,
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
	msg := &mq.Message{
		Topic: p.topic,
		Value: val,
	}
	if p.keyFunc != nil {
		msg.Key = []byte(p.keyFunc(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	return err
}
