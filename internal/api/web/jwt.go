package web

import (
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/notice-delivery/internal/errs"
	"github.com/golang-jwt/jwt/v4"
)

// ReceiverIDClaim token 里面接收者ID的字段
const ReceiverIDClaim = "uid"

// JwtAuth 只负责校验，token 由登录服务签发
type JwtAuth struct {
	key string
}

func NewJwtAuth(key string) *JwtAuth {
	return &JwtAuth{
		key: key,
	}
}

func (a *JwtAuth) Decode(tokenString string) (jwt.MapClaims, error) {
	// 兼容带 Bearer 前缀的写法
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return []byte(a.key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 令牌解析失败 %w", errs.ErrUnauthorized, err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: 无效的令牌", errs.ErrUnauthorized)
}

// ReceiverID 从 token 里面拿到接收者
func (a *JwtAuth) ReceiverID(tokenString string) (int64, error) {
	claims, err := a.Decode(tokenString)
	if err != nil {
		return 0, err
	}
	// JSON 数字解析出来是 float64
	v, ok := claims[ReceiverIDClaim].(float64)
	if !ok || v <= 0 {
		return 0, fmt.Errorf("%w: 缺少 %s", errs.ErrUnauthorized, ReceiverIDClaim)
	}
	return int64(v), nil
}

// Encode 测试和联调的时候用来签发 token
func (a *JwtAuth) Encode(customClaims jwt.MapClaims) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"iss": "notice-delivery",
	}
	for k, v := range customClaims {
		claims[k] = v
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.key))
}
