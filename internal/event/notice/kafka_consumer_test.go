package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	mqx2mocks "gitee.com/flycash/notice-delivery/internal/pkg/mqx2/mocks"
	"gitee.com/flycash/notice-delivery/internal/pkg/retry"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func kafkaMessage(t *testing.T, partition int32, offset kafka.Offset, noticeID int64) *kafka.Message {
	val, err := json.Marshal(Event{NoticeID: noticeID, ReceiverID: 42})
	require.NoError(t, err)
	topic := EventName
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: partition,
			Offset:    offset,
		},
		Key:   []byte("42"),
		Value: val,
	}
}

// 匹配分区和偏移量
type positionMatcher struct {
	partition int32
	offset    kafka.Offset
}

func (m positionMatcher) Matches(x any) bool {
	switch v := x.(type) {
	case *kafka.Message:
		return v.TopicPartition.Partition == m.partition && v.TopicPartition.Offset == m.offset
	case kafka.TopicPartition:
		return v.Partition == m.partition && v.Offset == m.offset
	default:
		return false
	}
}

func (m positionMatcher) String() string {
	return fmt.Sprintf("partition=%d offset=%d", m.partition, m.offset)
}

// 返回完 msgs 之后就超时
func expectRead(consumer *mqx2mocks.MockConsumer, msgs ...*kafka.Message) {
	calls := make([]any, 0, len(msgs)+1)
	for _, msg := range msgs {
		calls = append(calls, consumer.EXPECT().ReadMessage(gomock.Any()).Return(msg, nil))
	}
	calls = append(calls, consumer.EXPECT().ReadMessage(gomock.Any()).
		Return(nil, kafka.NewError(kafka.ErrTimedOut, "timed out", false)))
	gomock.InOrder(calls...)
}

func expectCommit(consumer *mqx2mocks.MockConsumer, partition int32, offset kafka.Offset) {
	consumer.EXPECT().CommitMessage(positionMatcher{partition: partition, offset: offset}).
		DoAndReturn(func(msg *kafka.Message) ([]kafka.TopicPartition, error) {
			return []kafka.TopicPartition{msg.TopicPartition}, nil
		})
}

// 模拟 broker 的确认
func expectRequeue(producer *mqx2mocks.MockProducer, wantTimes string, err error) {
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(msg *kafka.Message, deliveryChan chan kafka.Event) error {
			var times string
			for _, h := range msg.Headers {
				if h.Key == HeaderRedelivered {
					times = string(h.Value)
				}
			}
			if times != wantTimes {
				return fmt.Errorf("x-redelivered = %q, want %q", times, wantTimes)
			}
			msg.TopicPartition.Error = err
			deliveryChan <- msg
			return nil
		})
}

type recordHandler struct {
	mu       sync.Mutex
	seen     []int64
	outcomes map[int64]domain.Outcome
}

func (h *recordHandler) Handle(_ context.Context, n domain.Notice) domain.Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, n.ID)
	if o, ok := h.outcomes[n.ID]; ok {
		return o
	}
	return domain.OutcomeAck
}

func testKafkaConfig() ConsumerConfig {
	return ConsumerConfig{
		BatchSize: 10,
		Backoff: retry.Config{
			Type:          "fixed",
			FixedInterval: &retry.FixedIntervalConfig{MaxRetries: 3, Interval: 1},
		},
	}
}

func TestKafkaConsumer_Consume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		outcomes map[int64]domain.Outcome
		mock     func(t *testing.T, consumer *mqx2mocks.MockConsumer, producer *mqx2mocks.MockProducer)

		wantSeen []int64
		wantErr  bool
	}{
		{
			name: "没有消息",
			mock: func(_ *testing.T, consumer *mqx2mocks.MockConsumer, _ *mqx2mocks.MockProducer) {
				expectRead(consumer)
			},
		},
		{
			name: "全部确认，每个分区提交最后一条",
			mock: func(t *testing.T, consumer *mqx2mocks.MockConsumer, _ *mqx2mocks.MockProducer) {
				expectRead(consumer,
					kafkaMessage(t, 0, 10, 1),
					kafkaMessage(t, 1, 5, 2),
					kafkaMessage(t, 0, 11, 3))
				expectCommit(consumer, 0, 11)
				expectCommit(consumer, 1, 5)
			},
			wantSeen: []int64{1, 2, 3},
		},
		{
			name:     "失败的重新入队",
			outcomes: map[int64]domain.Outcome{2: domain.OutcomeNackRequeue},
			mock: func(t *testing.T, consumer *mqx2mocks.MockConsumer, producer *mqx2mocks.MockProducer) {
				expectRead(consumer,
					kafkaMessage(t, 0, 10, 1),
					kafkaMessage(t, 0, 11, 2))
				expectRequeue(producer, "1", nil)
				expectCommit(consumer, 0, 11)
			},
			wantSeen: []int64{1, 2},
		},
		{
			name:     "重新入队失败，回退到这一批的开头",
			outcomes: map[int64]domain.Outcome{3: domain.OutcomeNackRequeue},
			mock: func(t *testing.T, consumer *mqx2mocks.MockConsumer, producer *mqx2mocks.MockProducer) {
				expectRead(consumer,
					kafkaMessage(t, 0, 10, 1),
					kafkaMessage(t, 1, 5, 2),
					kafkaMessage(t, 0, 11, 3))
				expectRequeue(producer, "1", errors.New("broker down"))
				consumer.EXPECT().Seek(positionMatcher{partition: 0, offset: 10}, 0).Return(nil)
				consumer.EXPECT().Seek(positionMatcher{partition: 1, offset: 5}, 0).Return(nil)
			},
			wantSeen: []int64{1, 2, 3},
			wantErr:  true,
		},
		{
			name: "解析失败的消息直接确认",
			mock: func(t *testing.T, consumer *mqx2mocks.MockConsumer, _ *mqx2mocks.MockProducer) {
				bad := kafkaMessage(t, 0, 10, 1)
				bad.Value = []byte("not json")
				expectRead(consumer, bad, kafkaMessage(t, 0, 11, 2))
				expectCommit(consumer, 0, 11)
			},
			wantSeen: []int64{2},
		},
		{
			name: "读取失败",
			mock: func(_ *testing.T, consumer *mqx2mocks.MockConsumer, _ *mqx2mocks.MockProducer) {
				consumer.EXPECT().ReadMessage(gomock.Any()).
					Return(nil, kafka.NewError(kafka.ErrAllBrokersDown, "all brokers down", false))
			},
			wantErr: true,
		},
		{
			name: "提交失败",
			mock: func(t *testing.T, consumer *mqx2mocks.MockConsumer, _ *mqx2mocks.MockProducer) {
				expectRead(consumer, kafkaMessage(t, 0, 10, 1))
				consumer.EXPECT().CommitMessage(gomock.Any()).Return(nil, errors.New("coordinator not available"))
			},
			wantSeen: []int64{1},
			wantErr:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			consumer := mqx2mocks.NewMockConsumer(ctrl)
			producer := mqx2mocks.NewMockProducer(ctrl)
			tc.mock(t, consumer, producer)

			h := &recordHandler{outcomes: tc.outcomes}
			c, err := newKafkaConsumer(h, consumer, producer, testKafkaConfig())
			require.NoError(t, err)

			err = c.Consume(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
			assert.ElementsMatch(t, tc.wantSeen, h.seen)
		})
	}
}

// 已经重新入队过的消息，次数继续累加
func TestKafkaConsumer_RequeueTimes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := mqx2mocks.NewMockConsumer(ctrl)
	producer := mqx2mocks.NewMockProducer(ctrl)
	msg := kafkaMessage(t, 0, 10, 1)
	msg.Headers = []kafka.Header{
		{Key: "trace-id", Value: []byte("abc")},
		{Key: HeaderRedelivered, Value: []byte("2")},
	}
	expectRead(consumer, msg)
	expectRequeue(producer, "3", nil)
	expectCommit(consumer, 0, 10)

	h := &recordHandler{outcomes: map[int64]domain.Outcome{1: domain.OutcomeNackRequeue}}
	c, err := newKafkaConsumer(h, consumer, producer, testKafkaConfig())
	require.NoError(t, err)
	assert.NoError(t, c.Consume(context.Background()))
}

// broker 不可用的时候按照退避间隔重试，ctx 取消之后退出
func TestKafkaConsumer_StartBackoff(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := mqx2mocks.NewMockConsumer(ctrl)
	producer := mqx2mocks.NewMockProducer(ctrl)
	consumer.EXPECT().ReadMessage(gomock.Any()).
		Return(nil, kafka.NewError(kafka.ErrAllBrokersDown, "all brokers down", false)).
		MinTimes(1).MaxTimes(5)

	cfg := testKafkaConfig()
	cfg.Backoff.FixedInterval.Interval = 100
	c, err := newKafkaConsumer(&recordHandler{}, consumer, producer, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	start := time.Now()
	c.Start(ctx)
	assert.Less(t, time.Since(start), 2*time.Second)
}
