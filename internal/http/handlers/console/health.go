package console

import (
	"net/http"

	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/http/views"

	"github.com/gin-gonic/gin"
)

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// NotFound 未匹配的路由
func (h *Handler) NotFound(c *gin.Context) {
	if shared.WantsJSON(c) {
		response.NotFound(c, "Page not found.")
		return
	}
	c.HTML(http.StatusNotFound, "not_found.html", views.Data{Title: "Page Not Found", Viewer: viewerFrom(c)})
}
