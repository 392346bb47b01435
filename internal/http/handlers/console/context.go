package console

import (
	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

func viewerFrom(c *gin.Context) *views.Viewer {
	sess := shared.CurrentSession(c)
	if sess == nil {
		return nil
	}
	return &views.Viewer{UserID: sess.UserID(), Role: sess.Role()}
}

// actorFrom 由会话构造调用方，未登录时仅携带请求 ID
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{RequestID: shared.GetRequestID(c)}
	sess := shared.CurrentSession(c)
	if sess == nil {
		return actor
	}
	actor.UserID = sess.UserID()
	actor.Role = sess.Role()
	actor.Token = sess.Token()
	return actor
}
