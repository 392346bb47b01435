package shared

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// WantsJSON 客户端通过 Accept 头请求 JSON 信封时返回 true
func WantsJSON(c *gin.Context) bool {
	if c == nil || c.Request == nil {
		return false
	}
	return strings.Contains(strings.ToLower(c.GetHeader("Accept")), "application/json")
}
