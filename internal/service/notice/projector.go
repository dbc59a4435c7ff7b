package notice

import (
	"context"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/errs"
	"gitee.com/flycash/notice-delivery/internal/repository/cache"
)

// Projector 维护用户维度的未读数和最近通知列表
type Projector struct {
	cache cache.NoticeCache
}

func NewProjector(c cache.NoticeCache) *Projector {
	return &Projector{cache: c}
}

// Apply 返回的视图带上了投影之后的未读数
func (p *Projector) Apply(ctx context.Context, receiverID int64, n domain.Notice) (domain.NoticeView, error) {
	view := n.View(0)
	view.ReceiverID = receiverID
	unread, err := p.cache.Project(ctx, view)
	if err != nil {
		return domain.NoticeView{}, fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	view.Unread = unread
	return view, nil
}

// Summary 用户刚连上来的时候推送的概要
func (p *Projector) Summary(ctx context.Context, receiverID int64, limit int) (int64, []domain.NoticeView, error) {
	unread, err := p.cache.Unread(ctx, receiverID)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	recent, err := p.cache.Recent(ctx, receiverID, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	return unread, recent, nil
}

// MarkAllRead 未读数清零
func (p *Projector) MarkAllRead(ctx context.Context, receiverID int64) error {
	if err := p.cache.ResetUnread(ctx, receiverID); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	return nil
}
