package idempotent

import "context"

//go:generate mockgen -source=./type.go -package=idemmocks -destination=./mocks/idempotent.mock.go IdempotencyService
type IdempotencyService interface {
	// Claim 原子地写入带过期时间的标记，只有第一个写入成功的调用方拿到 true
	Claim(ctx context.Context, key string) (bool, error)
	// Release 删除标记，只有在副作用确定没有生效的时候才允许调用
	Release(ctx context.Context, key string) error
}
