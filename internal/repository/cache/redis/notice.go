package redis

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/project.lua
	projectScript string

	_ cache.NoticeCache = (*NoticeCache)(nil)
)

type NoticeCache struct {
	rdb       redis.Cmdable
	recentCap int
}

func NewNoticeCache(rdb redis.Cmdable, recentCap int) *NoticeCache {
	if recentCap <= 0 {
		recentCap = cache.DefaultRecentCap
	}
	return &NoticeCache{
		rdb:       rdb,
		recentCap: recentCap,
	}
}

func (c *NoticeCache) Project(ctx context.Context, view domain.NoticeView) (int64, error) {
	// 列表里面不存未读数，未读数以计数器为准
	view.Unread = 0
	data, err := json.Marshal(view)
	if err != nil {
		return 0, fmt.Errorf("序列化通知视图失败 %w", err)
	}
	unread, err := c.rdb.Eval(ctx, projectScript,
		[]string{cache.UnreadKey(view.ReceiverID), cache.RecentKey(view.ReceiverID)},
		data, c.recentCap,
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("更新通知缓存失败 %w", err)
	}
	return unread, nil
}

func (c *NoticeCache) Unread(ctx context.Context, receiverID int64) (int64, error) {
	unread, err := c.rdb.Get(ctx, cache.UnreadKey(receiverID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return unread, err
}

func (c *NoticeCache) Recent(ctx context.Context, receiverID int64, limit int) ([]domain.NoticeView, error) {
	if limit <= 0 || limit > c.recentCap {
		limit = c.recentCap
	}
	vals, err := c.rdb.LRange(ctx, cache.RecentKey(receiverID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取最近通知失败 %w", err)
	}
	views := make([]domain.NoticeView, 0, len(vals))
	for _, val := range vals {
		var view domain.NoticeView
		if err = json.Unmarshal([]byte(val), &view); err != nil {
			return nil, fmt.Errorf("反序列化通知视图失败 %w", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (c *NoticeCache) ResetUnread(ctx context.Context, receiverID int64) error {
	return c.rdb.Set(ctx, cache.UnreadKey(receiverID), 0, 0).Err()
}
