package push

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gitee.com/flycash/notice-delivery/internal/errs"
	"github.com/gofrs/uuid"
	"github.com/gorilla/websocket"
)

const defaultWriteTimeout = 3 * time.Second

var _ Channel = (*WebsocketChannel)(nil)

type WebsocketChannel struct {
	id           string
	receiverID   int64
	conn         *websocket.Conn
	writeTimeout time.Duration

	// gorilla/websocket 只允许一个并发写
	mu     sync.Mutex
	closed atomic.Bool
}

func NewWebsocketChannel(receiverID int64, conn *websocket.Conn, writeTimeout time.Duration) (*WebsocketChannel, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("生成连接ID失败 %w", err)
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &WebsocketChannel{
		id:           id.String(),
		receiverID:   receiverID,
		conn:         conn,
		writeTimeout: writeTimeout,
	}, nil
}

func (c *WebsocketChannel) ID() string {
	return c.id
}

func (c *WebsocketChannel) ReceiverID() int64 {
	return c.receiverID
}

func (c *WebsocketChannel) Send(ctx context.Context, msg Message) error {
	if c.closed.Load() {
		return errs.ErrChannelClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		_ = c.Close()
		return fmt.Errorf("%w: %w", errs.ErrChannelClosed, err)
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		// 写失败之后这条连接就不可用了
		_ = c.Close()
		return fmt.Errorf("%w: %w", errs.ErrChannelClosed, err)
	}
	return nil
}

// Ping 心跳，WriteControl 可以和 Send 并发调用
func (c *WebsocketChannel) Ping() error {
	if c.closed.Load() {
		return errs.ErrChannelClosed
	}
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeout))
}

func (c *WebsocketChannel) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}

func (c *WebsocketChannel) Closed() bool {
	return c.closed.Load()
}
