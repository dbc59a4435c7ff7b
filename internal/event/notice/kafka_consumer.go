package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/pkg/mqx2"
	"gitee.com/flycash/notice-delivery/internal/pkg/retry"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// KafkaConsumer 关闭了自动提交，一批消息处理完之后按分区提交最后一条。
// 需要重新入队的消息会重新发到 topic 上，发送失败的话整批都不提交，并且回退到这批的起点。
type KafkaConsumer struct {
	handler  Handler
	consumer mqx2.Consumer
	producer mqx2.Producer
	cfg      ConsumerConfig
	backoff  *retry.Backoff
	logger   *elog.Component
}

func NewKafkaConsumer(handler Handler, consumer *kafka.Consumer, producer *kafka.Producer, cfg ConsumerConfig) (*KafkaConsumer, error) {
	if err := consumer.SubscribeTopics([]string{EventName}, nil); err != nil {
		return nil, err
	}
	return newKafkaConsumer(handler, consumer, producer, cfg)
}

func newKafkaConsumer(handler Handler, consumer mqx2.Consumer, producer mqx2.Producer, cfg ConsumerConfig) (*KafkaConsumer, error) {
	cfg = cfg.withDefaults()
	backoff, err := retry.NewBackoff(cfg.Backoff)
	if err != nil {
		return nil, err
	}
	return &KafkaConsumer{
		handler:  handler,
		consumer: consumer,
		producer: producer,
		cfg:      cfg,
		backoff:  backoff,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 阻塞到 ctx 被取消，返回之后不会再用到 kafka 的客户端
func (c *KafkaConsumer) Start(ctx context.Context) {
	for ctx.Err() == nil {
		if err := c.Consume(ctx); err != nil {
			c.logger.Error("消费通知事件失败", elog.FieldErr(err))
			// broker 不可用的时候不要空转
			if !c.backoff.Wait(ctx) {
				return
			}
		}
	}
}

// Consume 处理一批消息
func (c *KafkaConsumer) Consume(ctx context.Context) error {
	msgs, err := c.collect(ctx)
	if len(msgs) == 0 {
		return err
	}
	if err != nil {
		// 已经拿到的先处理掉
		c.logger.Warn("获取消息失败", elog.FieldErr(err))
	}

	outcomes := c.handle(ctx, msgs)

	requeued := 0
	for i, msg := range msgs {
		if outcomes[i] != domain.OutcomeNackRequeue {
			continue
		}
		if err = c.requeue(ctx, msg); err != nil {
			c.rewind(msgs)
			return fmt.Errorf("重新入队失败: %w", err)
		}
		requeued++
	}

	if err = c.commit(msgs); err != nil {
		return err
	}

	if requeued > 0 {
		c.backoff.Wait(ctx)
	} else {
		c.backoff.Reset()
	}
	return nil
}

func (c *KafkaConsumer) collect(ctx context.Context) ([]*kafka.Message, error) {
	msgs := make([]*kafka.Message, 0, c.cfg.BatchSize)
	timer := time.NewTimer(c.cfg.BatchTimeout)
	defer timer.Stop()
	for len(msgs) < c.cfg.BatchSize {
		select {
		case <-ctx.Done():
			return msgs, nil
		case <-timer.C:
			return msgs, nil
		default:
		}
		msg, err := c.consumer.ReadMessage(c.cfg.BatchTimeout)
		if err != nil {
			var kErr kafka.Error
			if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
				return msgs, nil
			}
			return msgs, fmt.Errorf("获取消息失败: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (c *KafkaConsumer) handle(ctx context.Context, msgs []*kafka.Message) []domain.Outcome {
	outcomes := make([]domain.Outcome, len(msgs))
	var eg errgroup.Group
	eg.SetLimit(c.cfg.Workers)
	for i := range msgs {
		eg.Go(func() error {
			var evt Event
			if err := json.Unmarshal(msgs[i].Value, &evt); err != nil {
				c.logger.Warn("解析消息失败，丢弃",
					elog.FieldErr(err),
					elog.Any("partition", msgs[i].TopicPartition.Partition),
					elog.Any("offset", msgs[i].TopicPartition.Offset))
				outcomes[i] = domain.OutcomeAck
				return nil
			}
			outcomes[i] = c.handler.Handle(ctx, evt.Notice())
			return nil
		})
	}
	_ = eg.Wait()
	return outcomes
}

func (c *KafkaConsumer) requeue(ctx context.Context, msg *kafka.Message) error {
	times := 0
	headers := make([]kafka.Header, 0, len(msg.Headers)+1)
	for _, h := range msg.Headers {
		if h.Key == HeaderRedelivered {
			times = redeliveredTimes(string(h.Value))
			continue
		}
		headers = append(headers, h)
	}
	headers = append(headers, kafka.Header{
		Key:   HeaderRedelivered,
		Value: []byte(strconv.Itoa(times + 1)),
	})
	topic := EventName
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()
	return mqx2.SyncProduce(ctx, c.producer, &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	})
}

// commit 只提交每个分区的最后一条消息
func (c *KafkaConsumer) commit(msgs []*kafka.Message) error {
	lastMessages := make(map[int32]*kafka.Message)
	for _, msg := range msgs {
		lastMessages[msg.TopicPartition.Partition] = msg
	}
	for _, lastMsg := range lastMessages {
		if _, err := c.consumer.CommitMessage(lastMsg); err != nil {
			c.logger.Warn("提交消息失败",
				elog.FieldErr(err),
				elog.Any("partition", lastMsg.TopicPartition.Partition),
				elog.Any("offset", lastMsg.TopicPartition.Offset))
			return err
		}
	}
	return nil
}

// rewind 回到这一批每个分区的第一条，已经确认过的消息会被幂等标记挡住
func (c *KafkaConsumer) rewind(msgs []*kafka.Message) {
	firstMessages := make(map[int32]*kafka.Message)
	for _, msg := range msgs {
		if _, ok := firstMessages[msg.TopicPartition.Partition]; !ok {
			firstMessages[msg.TopicPartition.Partition] = msg
		}
	}
	for _, first := range firstMessages {
		if err := c.consumer.Seek(first.TopicPartition, 0); err != nil {
			c.logger.Error("回退消费位置失败",
				elog.FieldErr(err),
				elog.Any("partition", first.TopicPartition.Partition),
				elog.Any("offset", first.TopicPartition.Offset))
		}
	}
}
