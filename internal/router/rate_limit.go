package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRejectFunc 超限时的响应方式
type RateLimitRejectFunc func(c *gin.Context, code int, msg string)

// RateLimitRule 限流规则
// BlockSeconds 大于 0 时，首次超限会把计数 key 的过期时间延长为封禁时长。
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
	Message       string // 含一个 %d 占位符，表示剩余等待秒数
	Reject        RateLimitRejectFunc
}

const (
	defaultRateLimitMessage     = "Too many attempts. Please try again in %d seconds."
	rateLimitUnavailableMessage = "Rate limiter unavailable, please try again later."
)

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local block = tonumber(ARGV[2])
if block > 0 and current == tonumber(ARGV[3]) + 1 then
	redis.call("EXPIRE", KEYS[1], block)
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, rule.WindowSeconds, rule.BlockSeconds, rule.MaxRequests).Result()
		if err != nil {
			logger.WithRequest(getRequestID(c)).Errorw("rate_limit_script_failed", "prefix", rule.Prefix, "error", err)
			rule.reject(c, response.CodeInternal, rateLimitUnavailableMessage)
			return
		}

		values, ok := result.([]interface{})
		if !ok || len(values) < 2 {
			rule.reject(c, response.CodeInternal, rateLimitUnavailableMessage)
			return
		}
		count, ok := toInt64(values[0])
		if !ok {
			rule.reject(c, response.CodeInternal, rateLimitUnavailableMessage)
			return
		}
		ttlSeconds, _ := toInt64(values[1])
		if count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			if waitSeconds < 1 {
				waitSeconds = 1
			}
			format := strings.TrimSpace(rule.Message)
			if format == "" {
				format = defaultRateLimitMessage
			}
			logger.WithRequest(getRequestID(c)).Warnw("rate_limit_exceeded",
				"prefix", rule.Prefix,
				"client_ip", c.ClientIP(),
				"wait_seconds", waitSeconds,
			)
			rule.reject(c, response.CodeTooManyRequests, fmt.Sprintf(format, waitSeconds))
			return
		}

		c.Next()
	}
}

func (r RateLimitRule) reject(c *gin.Context, code int, msg string) {
	if r.Reject != nil {
		r.Reject(c, code, msg)
	} else {
		response.Error(c, code, msg)
	}
	c.Abort()
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndField 使用 IP + 表单或 JSON 字段作为限流 key
func KeyByIPAndField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		raw := ""
		if strings.Contains(c.ContentType(), "json") {
			raw = readJSONField(c, field)
		} else {
			raw = c.PostForm(field)
		}
		value := strings.ToLower(strings.TrimSpace(raw))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	value, ok := payload[field]
	if !ok {
		return ""
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}
