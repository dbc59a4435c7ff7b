package notice

import (
	"context"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/errs"
	"gitee.com/flycash/notice-delivery/internal/pkg/mqx"
	"gitee.com/flycash/notice-delivery/internal/pkg/mqx2"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/notice_event_producer.mock.go NoticeEventProducer
type NoticeEventProducer interface {
	// Produce 发送失败直接返回，不重试
	Produce(ctx context.Context, evt Event) error
}

type producer struct {
	p mqx.Producer[Event]
}

func (p *producer) Produce(ctx context.Context, evt Event) error {
	if err := evt.Validate(); err != nil {
		return err
	}
	if err := p.p.Produce(ctx, evt); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrTransportPublish, err)
	}
	return nil
}

func NewNoticeEventProducer(q mq.MQ) (NoticeEventProducer, error) {
	p, err := mqx.NewGeneralProducer[Event](q, EventName)
	if err != nil {
		return nil, err
	}
	return &producer{p: p.WithKey(Event.Key)}, nil
}

func NewKafkaNoticeEventProducer(kp mqx2.Producer) (NoticeEventProducer, error) {
	p, err := mqx2.NewGeneralProducer[Event](kp, EventName)
	if err != nil {
		return nil, err
	}
	return &producer{p: p.WithKey(Event.Key)}, nil
}
