package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/notice-delivery/internal/errs"
)

// NoticeType 通知类别，闭集，无法识别的值统一归为 NoticeTypeUnknown
type NoticeType string

const (
	NoticeTypeUnknown      NoticeType = "UNKNOWN"
	NoticeTypeSystem       NoticeType = "SYSTEM"        // 系统通知
	NoticeTypeTaskAssigned NoticeType = "TASK_ASSIGNED" // 任务指派
	NoticeTypeTaskUpdated  NoticeType = "TASK_UPDATED"  // 任务变更
	NoticeTypeComment      NoticeType = "COMMENT"       // 评论
	NoticeTypeMention      NoticeType = "MENTION"       // @提及
	NoticeTypeApproval     NoticeType = "APPROVAL"      // 审批
	NoticeTypeReminder     NoticeType = "REMINDER"      // 提醒
)

var noticeTypeTitles = map[NoticeType]string{
	NoticeTypeSystem:       "系统通知",
	NoticeTypeTaskAssigned: "任务指派",
	NoticeTypeTaskUpdated:  "任务变更",
	NoticeTypeComment:      "新的评论",
	NoticeTypeMention:      "有人提到了你",
	NoticeTypeApproval:     "审批通知",
	NoticeTypeReminder:     "提醒",
}

// ParseNoticeType 不认识的类型返回 NoticeTypeUnknown
func ParseNoticeType(s string) NoticeType {
	t := NoticeType(s)
	if _, ok := noticeTypeTitles[t]; ok {
		return t
	}
	return NoticeTypeUnknown
}

func (t NoticeType) String() string {
	return string(t)
}

// Title 用于展示的标题
func (t NoticeType) Title() string {
	if title, ok := noticeTypeTitles[t]; ok {
		return title
	}
	return "通知"
}

func (t NoticeType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *NoticeType) UnmarshalText(text []byte) error {
	*t = ParseNoticeType(string(text))
	return nil
}

// NoticeStatus 通知的查看状态
type NoticeStatus string

const (
	NoticeStatusUnknown NoticeStatus = "UNKNOWN"
	NoticeStatusUnread  NoticeStatus = "UNREAD"
	NoticeStatusRead    NoticeStatus = "READ"
)

func ParseNoticeStatus(s string) NoticeStatus {
	switch st := NoticeStatus(s); st {
	case NoticeStatusUnread, NoticeStatusRead:
		return st
	default:
		return NoticeStatusUnknown
	}
}

func (s NoticeStatus) String() string {
	return string(s)
}

func (s NoticeStatus) IsUnread() bool {
	return s == NoticeStatusUnread
}

func (s NoticeStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *NoticeStatus) UnmarshalText(text []byte) error {
	*s = ParseNoticeStatus(string(text))
	return nil
}

// Notice 通知事件，创建之后不可变
type Notice struct {
	ID          int64        // 通知ID
	ReceiverID  int64        // 接收者
	Content     string       // 内容
	SenderName  string       // 发送者名称
	CreatedTime time.Time    // 创建时间
	RelatedID   *int64       // 关联的业务ID，可以没有
	Type        NoticeType   // 通知类别
	Status      NoticeStatus // 查看状态
}

func (n Notice) Validate() error {
	if n.ID <= 0 {
		return fmt.Errorf("%w: noticeID = %d", errs.ErrInvalidParameter, n.ID)
	}
	if n.ReceiverID <= 0 {
		return fmt.Errorf("%w: receiverID = %d", errs.ErrInvalidParameter, n.ReceiverID)
	}
	return nil
}

// View 构造展示用的视图，unread 是投影之后的未读数
func (n Notice) View(unread int64) NoticeView {
	var relatedID *int64
	if n.RelatedID != nil {
		id := *n.RelatedID
		relatedID = &id
	}
	return NoticeView{
		NoticeID:    n.ID,
		ReceiverID:  n.ReceiverID,
		Type:        n.Type,
		Title:       n.Type.Title(),
		Content:     n.Content,
		SenderName:  n.SenderName,
		RelatedID:   relatedID,
		CreatedTime: n.CreatedTime.UnixMilli(),
		Unread:      unread,
	}
}

// NoticeView 缓存与推送使用的展示视图
type NoticeView struct {
	NoticeID    int64      `json:"noticeId"`
	ReceiverID  int64      `json:"receiverId"`
	Type        NoticeType `json:"noticeType"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	SenderName  string     `json:"senderName"`
	RelatedID   *int64     `json:"relatedId,omitempty"`
	CreatedTime int64      `json:"createdTime"`
	Unread      int64      `json:"unread"`
}

// DeliveryOutcome 投递结果，要么推送出去了，要么进入了离线队列
type DeliveryOutcome uint8

const (
	DeliveryOutcomePushed DeliveryOutcome = iota + 1
	DeliveryOutcomeQueued
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryOutcomePushed:
		return "pushed"
	case DeliveryOutcomeQueued:
		return "queued"
	default:
		return "unknown"
	}
}

// Outcome 消费一条消息之后，交给 MQ 适配层的决定
type Outcome uint8

const (
	OutcomeAck Outcome = iota + 1
	OutcomeNackRequeue
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAck:
		return "ack"
	case OutcomeNackRequeue:
		return "nack_requeue"
	default:
		return "unknown"
	}
}

// PendingNotice 等待用户上线之后再投递的通知
type PendingNotice struct {
	ID    uint64
	View  NoticeView
	Ctime time.Time
}
