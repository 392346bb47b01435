package console

import (
	"net/http"

	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBranches 网点列表
func (h *Handler) ListBranches(c *gin.Context) {
	page := h.BranchService.List(c.Request.Context(), actorFrom(c))
	render(c, "branches.html", views.Data{Title: "Branches", Page: page}, page.Error)
}

// ShowBranch 网点详情
func (h *Handler) ShowBranch(c *gin.Context) {
	page := h.BranchService.Detail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "branch.html", views.Data{Title: "Branch Details", Page: page, ID: c.Param("id")}, page.Error)
}

// NewBranch 新建网点表单
func (h *Handler) NewBranch(c *gin.Context) {
	render(c, "branch_form.html", branchFormData(service.BranchForm{}), "")
}

// CreateBranch 提交新建网点，成功后回到列表重新加载
func (h *Handler) CreateBranch(c *gin.Context) {
	var form service.BranchForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "branch_form.html", branchFormData(form), bindError(c, err))
		return
	}
	created, err := h.BranchService.Create(c.Request.Context(), actorFrom(c), form)
	if err != nil {
		renderForm(c, "branch_form.html", branchFormData(form), err)
		return
	}
	redirect(c, http.StatusSeeOther, "/branches", created)
}

// BranchStats 网点统计
func (h *Handler) BranchStats(c *gin.Context) {
	page := h.BranchService.Stats(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "branch_stats.html", views.Data{Title: "Branch Stats", Page: page, ID: c.Param("id")}, page.Error)
}

func branchFormData(form service.BranchForm) views.Data {
	return views.Data{Title: "Create Branch", Form: form}
}
