package push

import (
	"context"

	"gitee.com/flycash/notice-delivery/internal/domain"
)

const (
	MessageTypeNotice  = "notice"
	MessageTypeSummary = "summary"
)

// Message 推送给客户端的帧
type Message struct {
	Type   string              `json:"type"`
	Notice *domain.NoticeView  `json:"notice,omitempty"`
	Unread int64               `json:"unread"`
	Recent []domain.NoticeView `json:"recent,omitempty"`
}

func NewNoticeMessage(view domain.NoticeView) Message {
	return Message{
		Type:   MessageTypeNotice,
		Notice: &view,
		Unread: view.Unread,
	}
}

//go:generate mockgen -source=./types.go -package=pushmocks -destination=./mocks/channel.mock.go Channel
type Channel interface {
	// ID 每条连接唯一
	ID() string
	ReceiverID() int64
	// Send 返回 nil 表示已经写到连接上了
	Send(ctx context.Context, msg Message) error
	Close() error
}
