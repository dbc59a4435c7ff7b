package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gitee.com/flycash/notice-delivery/internal/errs"
	noticeevt "gitee.com/flycash/notice-delivery/internal/event/notice"
	"gitee.com/flycash/notice-delivery/internal/pkg/ratelimit"
	"gitee.com/flycash/notice-delivery/internal/service/notice"
	"gitee.com/flycash/notice-delivery/internal/service/push"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// 客户端发过来的帧
	frameTypeRead = "read"

	maxFrameSize = 1024
)

type Config struct {
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	// 心跳间隔，必须小于 PongWait
	PingPeriod  time.Duration `yaml:"pingPeriod"`
	PongWait    time.Duration `yaml:"pongWait"`
	RecentLimit int           `yaml:"recentLimit"`
}

func (c Config) withDefaults() Config {
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 3 * time.Second
	}
	if c.PongWait <= 0 {
		c.PongWait = 60 * time.Second
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = 20
	}
	return c
}

type clientFrame struct {
	Type string `json:"type"`
}

// Handler 用户通过 websocket 连上来接收通知
type Handler struct {
	auth      *JwtAuth
	limiter   ratelimit.Limiter
	registry  *push.Registry
	router    *notice.Router
	projector *notice.Projector
	producer  noticeevt.NoticeEventProducer
	upgrader  websocket.Upgrader
	cfg       Config
	logger    *elog.Component
}

func NewHandler(
	auth *JwtAuth,
	limiter ratelimit.Limiter,
	registry *push.Registry,
	router *notice.Router,
	projector *notice.Projector,
	producer noticeevt.NoticeEventProducer,
	cfg Config,
) *Handler {
	return &Handler{
		auth:      auth,
		limiter:   limiter,
		registry:  registry,
		router:    router,
		projector: projector,
		producer:  producer,
		upgrader: websocket.Upgrader{
			// 跨域由网关处理
			CheckOrigin: func(*http.Request) bool { return true },
		},
		cfg:    cfg.withDefaults(),
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/notices")
	g.GET("/ws", h.Connect)
	g.POST("/events", h.Publish)
}

func (h *Handler) token(ctx *gin.Context) string {
	if token := ctx.GetHeader("Authorization"); token != "" {
		return token
	}
	// 浏览器的 websocket 没办法带 header
	return ctx.Query("token")
}

// Connect 鉴权，限流，升级成 websocket 之后一直阻塞到连接断开
func (h *Handler) Connect(ctx *gin.Context) {
	receiverID, err := h.auth.ReceiverID(h.token(ctx))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{Code: http.StatusUnauthorized, Msg: errs.ErrUnauthorized.Error()})
		return
	}

	limited, err := h.limiter.Limit(ctx.Request.Context(), "notice:connect:"+strconv.FormatInt(receiverID, 10))
	if err != nil {
		// 限流器不可用的时候放行
		h.logger.Warn("连接限流失败", elog.Int64("receiverID", receiverID), elog.FieldErr(err))
	}
	if limited {
		ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ginx.Result{Code: http.StatusTooManyRequests, Msg: errs.ErrRateLimited.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade 已经写了响应
		h.logger.Warn("升级 websocket 失败", elog.Int64("receiverID", receiverID), elog.FieldErr(err))
		return
	}
	ch, err := push.NewWebsocketChannel(receiverID, conn, h.cfg.WriteTimeout)
	if err != nil {
		h.logger.Error("创建推送连接失败", elog.FieldErr(err))
		_ = conn.Close()
		return
	}

	// 连接的生命周期比请求的超时时间长
	sessCtx, cancel := context.WithCancel(context.WithoutCancel(ctx.Request.Context()))
	defer cancel()
	h.serve(sessCtx, ch, conn)
}

func (h *Handler) serve(ctx context.Context, ch *push.WebsocketChannel, conn *websocket.Conn) {
	receiverID := ch.ReceiverID()
	logger := h.logger.With(elog.Int64("receiverID", receiverID), elog.String("channelID", ch.ID()))
	defer func() {
		h.registry.Unregister(ch)
		_ = ch.Close()
		logger.Debug("连接断开")
	}()

	if err := h.online(ctx, ch); err != nil {
		logger.Warn("建立推送连接失败", elog.FieldErr(err))
		return
	}
	logger.Debug("连接建立")

	go h.heartbeat(ctx, ch)
	h.readLoop(ctx, ch, conn)
}

// online 先推送离线通知再登记连接，登记之后再补一次，中间进入离线存储的通知也不会漏
func (h *Handler) online(ctx context.Context, ch *push.WebsocketChannel) error {
	receiverID := ch.ReceiverID()
	if _, err := h.router.Drain(ctx, receiverID, ch); err != nil {
		return err
	}
	if old, replaced := h.registry.Register(ch); replaced {
		// 同一个用户只保留最新的连接
		_ = old.Close()
	}
	if _, err := h.router.Drain(ctx, receiverID, ch); err != nil {
		return err
	}

	unread, recent, err := h.projector.Summary(ctx, receiverID, h.cfg.RecentLimit)
	if err != nil {
		// 概要拿不到不影响后续推送
		h.logger.Warn("获取通知概要失败", elog.Int64("receiverID", receiverID), elog.FieldErr(err))
		return nil
	}
	return ch.Send(ctx, push.Message{
		Type:   push.MessageTypeSummary,
		Unread: unread,
		Recent: recent,
	})
}

func (h *Handler) heartbeat(ctx context.Context, ch *push.WebsocketChannel) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ch.Ping(); err != nil {
				_ = ch.Close()
				return
			}
		}
	}
}

func (h *Handler) readLoop(ctx context.Context, ch *push.WebsocketChannel, conn *websocket.Conn) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})
	for {
		var frame clientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) && !ch.Closed() {
				h.logger.Debug("读取客户端消息失败", elog.Int64("receiverID", ch.ReceiverID()), elog.FieldErr(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
		if frame.Type == frameTypeRead {
			if err := h.projector.MarkAllRead(ctx, ch.ReceiverID()); err != nil {
				h.logger.Warn("未读数清零失败", elog.Int64("receiverID", ch.ReceiverID()), elog.FieldErr(err))
			}
		}
	}
}

// Publish 给没有接入 MQ 的业务方发送通知事件
func (h *Handler) Publish(ctx *gin.Context) {
	if _, err := h.auth.Decode(h.token(ctx)); err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{Code: http.StatusUnauthorized, Msg: errs.ErrUnauthorized.Error()})
		return
	}
	var evt noticeevt.Event
	if err := ctx.ShouldBindJSON(&evt); err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Code: http.StatusBadRequest, Msg: errs.ErrInvalidParameter.Error()})
		return
	}
	err := h.producer.Produce(ctx.Request.Context(), evt)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{Msg: "OK"})
	case errors.Is(err, errs.ErrInvalidParameter):
		ctx.JSON(http.StatusBadRequest, ginx.Result{Code: http.StatusBadRequest, Msg: err.Error()})
	default:
		h.logger.Error("发送通知事件失败", elog.Int64("noticeID", evt.NoticeID), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ginx.Result{Code: http.StatusInternalServerError, Msg: errs.ErrTransportPublish.Error()})
	}
}
