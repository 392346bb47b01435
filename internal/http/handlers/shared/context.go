package shared

import (
	"github.com/tcc-console/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	// RequestIDKey 请求 ID 的上下文键
	RequestIDKey = "request_id"
	// SessionKey 当前会话的上下文键
	SessionKey = "console_session"
)

// SetSession 将会话写入请求上下文
func SetSession(c *gin.Context, sess *session.Session) {
	if sess == nil {
		return
	}
	c.Set(SessionKey, sess)
}

// CurrentSession 读取请求上下文中的会话，未登录时返回 nil
func CurrentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}

// GetRequestID 读取请求 ID
func GetRequestID(c *gin.Context) string {
	value, ok := c.Get(RequestIDKey)
	if !ok {
		return ""
	}
	if id, ok := value.(string); ok {
		return id
	}
	return ""
}
