package mqx2

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Consumer *kafka.Consumer 里面消费者用到的部分
//
//go:generate mockgen -source=./general_consumer.go -package=mqx2mocks -destination=./mocks/consumer.mock.go Consumer
type Consumer interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
	// Seek 回退到指定的偏移量，下次 ReadMessage 从这里开始
	Seek(partition kafka.TopicPartition, ignoredTimeoutMs int) error
}

var _ Consumer = (*kafka.Consumer)(nil)
