package cache

import (
	"context"
	"fmt"

	"gitee.com/flycash/notice-delivery/internal/domain"
)

const (
	UnreadPrefix = "notice:unread"
	RecentPrefix = "notice:recent"

	DefaultRecentCap = 20
)

//go:generate mockgen -source=./notice.go -package=cachemocks -destination=./mocks/notice.mock.go NoticeCache
type NoticeCache interface {
	// Project 未读数加一，同时把视图放到最近通知列表的头部并截断，两者要么都生效要么都不生效
	// 返回投影之后的未读数
	Project(ctx context.Context, view domain.NoticeView) (int64, error)
	Unread(ctx context.Context, receiverID int64) (int64, error)
	// Recent 最新的在前面
	Recent(ctx context.Context, receiverID int64, limit int) ([]domain.NoticeView, error)
	ResetUnread(ctx context.Context, receiverID int64) error
}

func UnreadKey(receiverID int64) string {
	return fmt.Sprintf("%s:%d", UnreadPrefix, receiverID)
}

func RecentKey(receiverID int64) string {
	return fmt.Sprintf("%s:%d", RecentPrefix, receiverID)
}
