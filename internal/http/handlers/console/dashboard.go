package console

import (
	"net/http"

	"github.com/tcc-console/internal/http/views"

	"github.com/gin-gonic/gin"
)

// Dashboard 仪表盘
func (h *Handler) Dashboard(c *gin.Context) {
	page := h.DashboardService.Load(c.Request.Context(), actorFrom(c))
	render(c, "dashboard.html", views.Data{Title: "Dashboard", Page: page}, page.Error)
}

// QuickAction 解析快捷操作并跳转，失败时在仪表盘上提示
func (h *Handler) QuickAction(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFrom(c)
	location, err := h.DashboardService.QuickAction(ctx, actor, c.Param("action"))
	if err != nil {
		page := h.DashboardService.Load(ctx, actor)
		renderForm(c, "dashboard.html", views.Data{Title: "Dashboard", Page: page}, err)
		return
	}
	redirect(c, http.StatusFound, location, nil)
}
