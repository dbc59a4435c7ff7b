package notice

import (
	"strconv"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
)

const (
	EventName = "notice_events"
	// HeaderRedelivered 重新入队的次数
	HeaderRedelivered = "x-redelivered"
)

// Event 通知事件在 MQ 上的格式
type Event struct {
	NoticeID    int64               `json:"noticeId"`
	ReceiverID  int64               `json:"receiverId"`
	Content     string              `json:"content"`
	SenderName  string              `json:"senderName"`
	CreatedTime int64               `json:"createdTime"` // 毫秒
	RelatedID   *int64              `json:"relatedId,omitempty"`
	Type        domain.NoticeType   `json:"noticeType"`
	Status      domain.NoticeStatus `json:"status"`
}

func NewEvent(n domain.Notice) Event {
	return Event{
		NoticeID:    n.ID,
		ReceiverID:  n.ReceiverID,
		Content:     n.Content,
		SenderName:  n.SenderName,
		CreatedTime: n.CreatedTime.UnixMilli(),
		RelatedID:   n.RelatedID,
		Type:        n.Type,
		Status:      n.Status,
	}
}

func (e Event) Notice() domain.Notice {
	return domain.Notice{
		ID:          e.NoticeID,
		ReceiverID:  e.ReceiverID,
		Content:     e.Content,
		SenderName:  e.SenderName,
		CreatedTime: time.UnixMilli(e.CreatedTime),
		RelatedID:   e.RelatedID,
		Type:        e.Type,
		Status:      e.Status,
	}
}

func (e Event) Validate() error {
	return e.Notice().Validate()
}

// Key 同一个接收者的事件落在同一个分区
func (e Event) Key() string {
	return strconv.FormatInt(e.ReceiverID, 10)
}

func redeliveredTimes(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
