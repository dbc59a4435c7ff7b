package notice

import (
	"context"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/errs"
	"gitee.com/flycash/notice-delivery/internal/repository"
	"gitee.com/flycash/notice-delivery/internal/service/push"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

const defaultDrainBatchSize = 100

// Router 用户在线就直接推送，否则存到离线队列里面等用户上线
type Router struct {
	registry       *push.Registry
	repo           repository.PendingRepository
	drainBatchSize int
	logger         *elog.Component
}

func NewRouter(registry *push.Registry, repo repository.PendingRepository) *Router {
	return &Router{
		registry:       registry,
		repo:           repo,
		drainBatchSize: defaultDrainBatchSize,
		logger:         elog.DefaultLogger,
	}
}

func (r *Router) WithDrainBatchSize(size int) *Router {
	if size > 0 {
		r.drainBatchSize = size
	}
	return r
}

// Deliver 只有离线存储也失败的时候才会返回 error，推送失败会退化为离线存储
func (r *Router) Deliver(ctx context.Context, receiverID int64, view domain.NoticeView) (domain.DeliveryOutcome, error) {
	if ch, ok := r.registry.Lookup(receiverID); ok {
		err := ch.Send(ctx, push.NewNoticeMessage(view))
		if err == nil {
			deliveryCounter.WithLabelValues(domain.DeliveryOutcomePushed.String()).Inc()
			return domain.DeliveryOutcomePushed, nil
		}
		r.logger.Warn("推送通知失败，转入离线存储",
			elog.Int64("receiverID", receiverID),
			elog.Int64("noticeID", view.NoticeID),
			elog.String("channelID", ch.ID()),
			elog.FieldErr(err))
	}
	if err := r.repo.Enqueue(ctx, view); err != nil {
		deliveryCounter.WithLabelValues("failed").Inc()
		return 0, fmt.Errorf("%w: %w", errs.ErrOfflineStoreUnavailable, err)
	}
	deliveryCounter.WithLabelValues(domain.DeliveryOutcomeQueued.String()).Inc()
	return domain.DeliveryOutcomeQueued, nil
}

// Drain 按照入队顺序把离线通知推给刚上线的连接，发出去的才会删除。
// 遇到推送失败就停下来，剩下的继续留在离线存储里。
func (r *Router) Drain(ctx context.Context, receiverID int64, ch push.Channel) (int, error) {
	total := 0
	for {
		pns, err := r.repo.Find(ctx, receiverID, r.drainBatchSize)
		if err != nil {
			return total, fmt.Errorf("%w: %w", errs.ErrOfflineStoreUnavailable, err)
		}
		if len(pns) == 0 {
			return total, nil
		}

		cnt := 0
		var sendErr error
		for ; cnt < len(pns); cnt++ {
			if sendErr = ch.Send(ctx, push.NewNoticeMessage(pns[cnt].View)); sendErr != nil {
				break
			}
		}
		sent := repository.PendingIDs(pns[:cnt])

		var res error
		if sendErr != nil {
			res = multierror.Append(res, sendErr)
		}
		if len(sent) > 0 {
			if err = r.repo.Delete(ctx, receiverID, sent...); err != nil {
				// 下次上线会重复推送
				res = multierror.Append(res, fmt.Errorf("%w: %w", errs.ErrOfflineStoreUnavailable, err))
			}
		}
		total += len(sent)
		drainCounter.Add(float64(len(sent)))
		if res != nil {
			return total, res
		}
		if len(pns) < r.drainBatchSize {
			return total, nil
		}
	}
}
