package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")

	ErrIdempotencyUnavailable  = errors.New("幂等存储不可用")
	ErrCacheUnavailable        = errors.New("通知缓存不可用")
	ErrOfflineStoreUnavailable = errors.New("离线通知存储不可用")
	ErrTransportPublish        = errors.New("通知事件发送失败")

	ErrChannelClosed = errors.New("推送连接已关闭")
	ErrRateLimited   = errors.New("请求过于频繁")
	ErrUnauthorized  = errors.New("未授权")
)
