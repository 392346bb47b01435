package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tcc-console/internal/authz"
	"github.com/tcc-console/internal/config"
	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = shared.RequestIDKey
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-CSRF-Token",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials && allowedOrigin != "" && allowedOrigin != "*" {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// resolveAllowedOrigin 解析允许的来源
// 通配符只返回 *，不回显请求来源；携带凭证的跨域只对显式列出的来源开放。
func resolveAllowedOrigin(origin string, allowedOrigins []string) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	wildcard := false
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			wildcard = true
			continue
		}
		if origin != "" && strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	if wildcard {
		return "*"
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"user_id", shared.CurrentSession(c).UserID(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 从 Cookie 加载会话并注入请求上下文
// 会话缺失、损坏或令牌无法解码时按未登录继续处理。
func SessionMiddleware(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil {
			c.Next()
			return
		}
		id, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(id) == "" {
			c.Next()
			return
		}
		sess, err := manager.Current(c.Request.Context(), id)
		if err != nil {
			logger.WithRequest(getRequestID(c)).Warnw("session_load_failed", "error", err)
			c.Next()
			return
		}
		shared.SetSession(c, sess)
		c.Next()
	}
}

// PageGuard 页面守卫
// requiredRole 为空时只要求登录；否则要求角色一致且策略表授予当前页面。
func PageGuard(authzService *authz.Service, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := shared.CurrentSession(c)
		matches := false
		if sess != nil {
			allowed, err := authzService.RoleMatches(sess.Role(), requiredRole, c.Request.URL.Path, c.Request.Method)
			if err != nil {
				logger.WithRequest(getRequestID(c)).Errorw("page_guard_enforce_failed",
					"role", sess.Role(),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err,
				)
			}
			matches = allowed && err == nil
		}

		switch authz.Decide(sess != nil, matches) {
		case authz.Render:
			c.Next()
		case authz.RedirectLogin:
			denyPage(c, response.Unauthorized, "Please log in to continue.", constants.PathLogin)
		default:
			logger.WithRequest(getRequestID(c)).Warnw("page_guard_role_mismatch",
				"role", sess.Role(),
				"required_role", requiredRole,
				"path", c.Request.URL.Path,
			)
			denyPage(c, response.Forbidden, "You do not have access to this page.", constants.PathDashboard)
		}
	}
}

func denyPage(c *gin.Context, respond func(*gin.Context, string), msg, location string) {
	if shared.WantsJSON(c) {
		respond(c, msg)
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
