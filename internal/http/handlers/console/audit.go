package console

import (
	"strings"

	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListActivity 控制台操作日志（经理）
func (h *Handler) ListActivity(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c.Query("page"), c.Query("page_size"))
	filter := repository.ActionLogListFilter{
		Page:       page,
		PageSize:   pageSize,
		UserID:     strings.TrimSpace(c.Query("user_id")),
		Action:     strings.TrimSpace(c.Query("action")),
		TargetType: strings.TrimSpace(c.Query("target_type")),
		Keyword:    strings.TrimSpace(c.Query("q")),
	}
	result := h.ActionLogService.List(c.Request.Context(), filter)
	if shared.WantsJSON(c) && result.Error == "" {
		response.SuccessWithPage(c, result.Logs, response.BuildPagination(result.Page, result.PageSize, result.Total))
		return
	}
	render(c, "audit.html", views.Data{Title: "Activity", Page: result, Query: filter.Keyword}, result.Error)
}
