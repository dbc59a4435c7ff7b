package notice

import (
	"context"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// 释放幂等标记的超时时间
const releaseTimeout = 3 * time.Second

// Handler 消费通知事件的核心流程，和具体的 MQ 无关。
// 幂等标记 -> 更新缓存 -> 推送或者离线存储，返回 ack 还是重新入队由 MQ 适配层执行。
type Handler struct {
	guard     *Guard
	projector *Projector
	router    *Router
	tracer    trace.Tracer
	logger    *elog.Component
}

func NewHandler(guard *Guard, projector *Projector, router *Router) *Handler {
	return &Handler{
		guard:     guard,
		projector: projector,
		router:    router,
		tracer:    otel.Tracer("gitee.com/flycash/notice-delivery/internal/service/notice"),
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) Handle(ctx context.Context, n domain.Notice) domain.Outcome {
	ctx, span := h.tracer.Start(ctx, "notice.Handle", trace.WithAttributes(
		attribute.Int64("notice.id", n.ID),
		attribute.Int64("notice.receiver_id", n.ReceiverID),
		attribute.String("notice.type", n.Type.String()),
	))
	defer span.End()

	outcome, err := h.handle(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("notice.outcome", outcome.String()))
	consumeCounter.WithLabelValues(outcome.String()).Inc()
	return outcome
}

func (h *Handler) handle(ctx context.Context, n domain.Notice) (domain.Outcome, error) {
	if err := n.Validate(); err != nil {
		// 重试也不会变合法
		h.logger.Warn("非法的通知事件，直接丢弃", elog.Any("notice", n), elog.FieldErr(err))
		return domain.OutcomeAck, err
	}

	first, err := h.guard.Claim(ctx, n.ID, n.ReceiverID)
	if err != nil {
		h.logger.Error("获取幂等标记失败",
			elog.Int64("noticeID", n.ID),
			elog.Int64("receiverID", n.ReceiverID),
			elog.FieldErr(err))
		return domain.OutcomeNackRequeue, err
	}
	if !first {
		h.logger.Info("重复的通知事件",
			elog.Int64("noticeID", n.ID),
			elog.Int64("receiverID", n.ReceiverID))
		return domain.OutcomeAck, nil
	}

	view, err := h.projector.Apply(ctx, n.ReceiverID, n)
	if err != nil {
		h.logger.Error("更新通知缓存失败",
			elog.Int64("noticeID", n.ID),
			elog.Int64("receiverID", n.ReceiverID),
			elog.FieldErr(err))
		h.release(ctx, n)
		return domain.OutcomeNackRequeue, err
	}

	outcome, err := h.router.Deliver(ctx, n.ReceiverID, view)
	if err != nil {
		h.logger.Error("投递通知失败",
			elog.Int64("noticeID", n.ID),
			elog.Int64("receiverID", n.ReceiverID),
			elog.FieldErr(err))
		h.release(ctx, n)
		return domain.OutcomeNackRequeue, err
	}
	h.logger.Debug("通知投递完成",
		elog.Int64("noticeID", n.ID),
		elog.Int64("receiverID", n.ReceiverID),
		elog.String("outcome", outcome.String()))
	return domain.OutcomeAck, nil
}

func (h *Handler) release(ctx context.Context, n domain.Notice) {
	// 关闭的时候 ctx 已经被取消了，消息还会被重新入队，标记必须删掉
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := h.guard.Release(ctx, n.ID, n.ReceiverID); err != nil {
		// 标记没删掉，重新投递的时候会被当成重复消息
		h.logger.Error("释放幂等标记失败，这条通知可能会丢失",
			elog.Int64("noticeID", n.ID),
			elog.Int64("receiverID", n.ReceiverID),
			elog.FieldErr(err))
	}
}
