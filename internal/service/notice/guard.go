package notice

import (
	"context"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/errs"
	"gitee.com/flycash/notice-delivery/internal/pkg/idempotent"
)

const idempotentKeyPrefix = "notice:idempotent"

// Guard 去重，同一个 (noticeID, receiverID) 只有第一次 Claim 返回 true
type Guard struct {
	svc idempotent.IdempotencyService
}

func NewGuard(svc idempotent.IdempotencyService) *Guard {
	return &Guard{svc: svc}
}

func (g *Guard) Claim(ctx context.Context, noticeID, receiverID int64) (bool, error) {
	ok, err := g.svc.Claim(ctx, g.key(noticeID, receiverID))
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrIdempotencyUnavailable, err)
	}
	return ok, nil
}

// Release 副作用没有生效的时候放弃标记，让重新投递的消息还能被处理
func (g *Guard) Release(ctx context.Context, noticeID, receiverID int64) error {
	if err := g.svc.Release(ctx, g.key(noticeID, receiverID)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIdempotencyUnavailable, err)
	}
	return nil
}

func (g *Guard) key(noticeID, receiverID int64) string {
	return fmt.Sprintf("%s:%d:%d", idempotentKeyPrefix, noticeID, receiverID)
}
