package console

import (
	"context"
	"net/http"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// ShowAccess 经理页面权限列表
func (h *Handler) ShowAccess(c *gin.Context) {
	page := h.AccessService.Page(c.Request.Context(), actorFrom(c))
	render(c, "access.html", views.Data{Title: "Page Access", Page: page}, page.Error)
}

// GrantAccess 为经理授予页面
func (h *Handler) GrantAccess(c *gin.Context) {
	h.changeAccess(c, h.AccessService.Grant)
}

// RevokeAccess 撤销经理页面
func (h *Handler) RevokeAccess(c *gin.Context) {
	h.changeAccess(c, h.AccessService.Revoke)
}

func (h *Handler) changeAccess(c *gin.Context, apply func(context.Context, service.Actor, service.PolicyForm) error) {
	ctx := c.Request.Context()
	actor := actorFrom(c)
	var form service.PolicyForm
	if err := c.ShouldBind(&form); err != nil {
		page := h.AccessService.Page(ctx, actor)
		renderForm(c, "access.html", views.Data{Title: "Page Access", Page: page, Form: form}, bindError(c, err))
		return
	}
	if err := apply(ctx, actor, form); err != nil {
		page := h.AccessService.Page(ctx, actor)
		renderForm(c, "access.html", views.Data{Title: "Page Access", Page: page, Form: form}, err)
		return
	}
	redirect(c, http.StatusSeeOther, constants.PathAccess, nil)
}
