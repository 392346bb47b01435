package authz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken 令牌无法解码
	ErrInvalidToken = errors.New("invalid access token")
	// ErrTokenExpired 令牌已过期
	ErrTokenExpired = errors.New("access token expired")
)

// Claims 从访问令牌中解出的声明
// 签名不做校验，只用于界面门控。
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt *time.Time
}

// HasRole 判断声明中的角色
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	return c.Role == strings.ToUpper(strings.TrimSpace(role))
}

// DecodeClaims 解码访问令牌的载荷
func DecodeClaims(token string) (*Claims, error) {
	return DecodeClaimsAt(token, time.Now())
}

// DecodeClaimsAt 按给定时间解码访问令牌，过期令牌视为解码失败
func DecodeClaimsAt(token string, now time.Time) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := &Claims{
		UserID: claimString(mapClaims["sub"]),
		Role:   strings.ToUpper(claimString(mapClaims["role"])),
	}
	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if exp != nil {
		expiresAt := exp.Time
		if !expiresAt.After(now) {
			return nil, ErrTokenExpired
		}
		claims.ExpiresAt = &expiresAt
	}
	return claims, nil
}

func claimString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
