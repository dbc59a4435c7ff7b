package notice

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/pkg/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// MQConsumer 基于 mq-api 的消费者，mq-api 没有 nack，重新入队就是重新发一次
type MQConsumer struct {
	handler  Handler
	consumer mq.Consumer
	producer mq.Producer
	cfg      ConsumerConfig
	logger   *elog.Component
}

func NewMQConsumer(handler Handler, q mq.MQ, cfg ConsumerConfig) (*MQConsumer, error) {
	cfg = cfg.withDefaults()
	if _, err := retry.NewBackoff(cfg.Backoff); err != nil {
		return nil, err
	}
	consumer, err := q.Consumer(EventName, cfg.GroupID)
	if err != nil {
		return nil, err
	}
	producer, err := q.Producer(EventName)
	if err != nil {
		return nil, err
	}
	return &MQConsumer{
		handler:  handler,
		consumer: consumer,
		producer: producer,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 阻塞到 ctx 被取消并且所有协程都退出
func (c *MQConsumer) Start(ctx context.Context) {
	if err := c.Consume(ctx); err != nil {
		c.logger.Error("消费通知事件失败", elog.FieldErr(err))
	}
}

// Consume 阻塞直到 ctx 被取消
func (c *MQConsumer) Consume(ctx context.Context) error {
	msgCh, err := c.consumer.ConsumeChan(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var eg errgroup.Group
	for i := 0; i < c.cfg.Workers; i++ {
		eg.Go(func() error {
			return c.work(ctx, msgCh)
		})
	}
	return eg.Wait()
}

func (c *MQConsumer) work(ctx context.Context, msgCh <-chan *mq.Message) error {
	backoff, err := retry.NewBackoff(c.cfg.Backoff)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgCh:
			if !ok {
				return nil
			}
			if c.process(ctx, msg) == domain.OutcomeNackRequeue {
				// 多半是存储出了问题，慢一点
				if !backoff.Wait(ctx) {
					return nil
				}
				continue
			}
			backoff.Reset()
		}
	}
}

func (c *MQConsumer) process(ctx context.Context, msg *mq.Message) domain.Outcome {
	var evt Event
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Warn("解析消息失败，丢弃",
			elog.FieldErr(err),
			elog.String("msg", string(msg.Value)))
		return domain.OutcomeAck
	}
	outcome := c.handler.Handle(ctx, evt.Notice())
	if outcome == domain.OutcomeNackRequeue {
		if err := c.requeue(ctx, msg); err != nil {
			c.logger.Error("重新入队失败，消息丢失",
				elog.Int64("noticeID", evt.NoticeID),
				elog.Int64("receiverID", evt.ReceiverID),
				elog.FieldErr(err))
		}
	}
	return outcome
}

func (c *MQConsumer) requeue(ctx context.Context, msg *mq.Message) error {
	header := make(mq.Header, len(msg.Header)+1)
	for k, v := range msg.Header {
		header[k] = v
	}
	header[HeaderRedelivered] = strconv.Itoa(redeliveredTimes(msg.Header[HeaderRedelivered]) + 1)
	// 关闭的时候 ctx 已经被取消了，也要发出去
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()
	_, err := c.producer.Produce(ctx, &mq.Message{
		Topic:  EventName,
		Key:    msg.Key,
		Value:  msg.Value,
		Header: header,
	})
	return err
}
