package ioc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"

	noticeevt "gitee.com/flycash/notice-delivery/internal/event/notice"
)

const kafkaAddr = "localhost:9092"

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		const maxInterval = 10 * time.Second
		const maxRetries = 10
		strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
		if err != nil {
			panic(err)
		}
		for {
			q, err = initMQ()
			if err == nil {
				break
			}
			next, ok := strategy.Next()
			if !ok {
				panic("InitMQ 重试失败......")
			}
			time.Sleep(next)
		}
	})
	return q
}

func initMQ() (mq.MQ, error) {
	// 替换用内存实现，方便测试
	qq := memory.NewMQ()
	err := qq.CreateTopic(context.Background(), noticeevt.EventName, 1)
	if err != nil {
		return nil, err
	}
	return qq, nil
}

func InitTopic() {
	initTopic(kafka.TopicSpecification{
		Topic:             noticeevt.EventName,
		NumPartitions:     2,
		ReplicationFactor: 1,
	})
}

func InitProducer(id string) *kafka.Producer {
	config := &kafka.ConfigMap{
		"bootstrap.servers": kafkaAddr,
		"client.id":         id,
	}
	producer, err := kafka.NewProducer(config)
	if err != nil {
		panic(fmt.Sprintf("创建生产者失败: %v", err))
	}
	return producer
}

func InitConsumer(groupID string) *kafka.Consumer {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  kafkaAddr,
		"group.id":           groupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		panic(fmt.Sprintf("创建消费者失败: %v", err))
	}
	return consumer
}

func initTopic(topics ...kafka.TopicSpecification) {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": kafkaAddr,
	})
	if err != nil {
		panic(fmt.Sprintf("创建kafka连接失败: %v", err))
	}
	defer adminClient.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, topics)
	if err != nil {
		panic(fmt.Sprintf("创建topic失败: %v", err))
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			panic(fmt.Sprintf("创建topic失败 %s: %v", result.Topic, result.Error))
		}
	}
}
