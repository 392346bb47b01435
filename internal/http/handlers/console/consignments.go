package console

import (
	"net/http"
	"net/url"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// ListConsignments 托运单列表，支持 ?status= 筛选
func (h *Handler) ListConsignments(c *gin.Context) {
	page := h.ConsignmentService.List(c.Request.Context(), actorFrom(c), c.Query("status"))
	render(c, "consignments.html", views.Data{
		Title:   "Consignments",
		Page:    page,
		Choices: constants.ConsignmentStatuses(),
	}, page.Error)
}

// NewConsignment 新建托运单表单
func (h *Handler) NewConsignment(c *gin.Context) {
	render(c, "consignment_form.html", h.consignmentFormData(c, service.ConsignmentForm{}), "")
}

// CreateConsignment 提交新建托运单
func (h *Handler) CreateConsignment(c *gin.Context) {
	var form service.ConsignmentForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "consignment_form.html", h.consignmentFormData(c, form), bindError(c, err))
		return
	}
	created, err := h.ConsignmentService.Create(c.Request.Context(), actorFrom(c), form)
	if err != nil {
		renderForm(c, "consignment_form.html", h.consignmentFormData(c, form), err)
		return
	}
	redirect(c, http.StatusSeeOther, "/consignments", created)
}

// ConsignmentStats 按目的地统计
func (h *Handler) ConsignmentStats(c *gin.Context) {
	page := h.ConsignmentService.Stats(c.Request.Context(), actorFrom(c), c.Query("destination"))
	render(c, "consignment_stats.html", views.Data{Title: "Consignment Stats", Page: page}, page.Error)
}

// ShowConsignment 托运单详情
func (h *Handler) ShowConsignment(c *gin.Context) {
	page := h.ConsignmentService.Detail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "consignment.html", views.Data{Title: "Consignment Details", Page: page, ID: c.Param("id")}, page.Error)
}

// ConsignmentStatusForm 托运单状态更新表单
func (h *Handler) ConsignmentStatusForm(c *gin.Context) {
	form := service.ConsignmentStatusForm{Status: c.Query("status")}
	render(c, "consignment_status.html", consignmentStatusData(c.Param("id"), form), "")
}

// UpdateConsignmentStatus 提交托运单状态
func (h *Handler) UpdateConsignmentStatus(c *gin.Context) {
	id := c.Param("id")
	var form service.ConsignmentStatusForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "consignment_status.html", consignmentStatusData(id, form), bindError(c, err))
		return
	}
	updated, err := h.ConsignmentService.UpdateStatus(c.Request.Context(), actorFrom(c), id, form)
	if err != nil {
		renderForm(c, "consignment_status.html", consignmentStatusData(id, form), err)
		return
	}
	redirect(c, http.StatusSeeOther, "/consignments/"+url.PathEscape(id), updated)
}

func (h *Handler) consignmentFormData(c *gin.Context, form service.ConsignmentForm) views.Data {
	branches, branchErr := h.BranchService.Options(c.Request.Context(), actorFrom(c))
	return views.Data{
		Title:       "Create Consignment",
		Form:        form,
		Branches:    branches,
		BranchError: branchErr,
	}
}

func consignmentStatusData(id string, form service.ConsignmentStatusForm) views.Data {
	return views.Data{
		Title:   "Update Consignment Status",
		Form:    form,
		ID:      id,
		Choices: constants.ConsignmentStatuses(),
	}
}
