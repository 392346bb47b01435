package console

import (
	"net/http"
	"net/url"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsers 用户列表（经理）
func (h *Handler) ListUsers(c *gin.Context) {
	page := h.UserService.List(c.Request.Context(), actorFrom(c))
	render(c, "users.html", views.Data{Title: "Users", Page: page}, page.Error)
}

// ShowUser 用户详情与编辑表单
func (h *Handler) ShowUser(c *gin.Context) {
	id := c.Param("id")
	page := h.UserService.Detail(c.Request.Context(), actorFrom(c), id)
	data := h.userData(c, id, page)
	if page.User != nil {
		form := service.UserUpdateForm{Username: page.User.Username, Role: string(page.User.Role)}
		if page.User.BranchID != nil {
			form.BranchID = *page.User.BranchID
			form.OriginalBranchID = *page.User.BranchID
		}
		data.Form = form
	}
	render(c, "user.html", data, page.Error)
}

// UpdateUser 提交用户修改，只发送有变化的字段
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var form service.UserUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.userData(c, id, service.UserDetailPage{})
		data.Form = form
		renderForm(c, "user.html", data, bindError(c, err))
		return
	}
	updated, err := h.UserService.Update(c.Request.Context(), actorFrom(c), id, form)
	if err != nil {
		data := h.userData(c, id, service.UserDetailPage{})
		data.Form = form
		renderForm(c, "user.html", data, err)
		return
	}
	redirect(c, http.StatusSeeOther, "/users/"+url.PathEscape(id), updated)
}

// DeleteUser 删除用户，失败时在列表页提示
func (h *Handler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFrom(c)
	if err := h.UserService.Delete(ctx, actor, c.Param("id")); err != nil {
		page := h.UserService.List(ctx, actor)
		renderForm(c, "users.html", views.Data{Title: "Users", Page: page}, err)
		return
	}
	redirect(c, http.StatusSeeOther, "/users", nil)
}

func (h *Handler) userData(c *gin.Context, id string, page service.UserDetailPage) views.Data {
	branches, branchErr := h.BranchService.Options(c.Request.Context(), actorFrom(c))
	return views.Data{
		Title:       "User Details",
		Page:        page,
		ID:          id,
		Branches:    branches,
		BranchError: branchErr,
		Choices:     constants.Roles(),
	}
}
