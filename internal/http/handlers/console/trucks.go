package console

import (
	"net/http"
	"net/url"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// ListTrucks 车辆列表，支持 ?status= 筛选
func (h *Handler) ListTrucks(c *gin.Context) {
	page := h.TruckService.List(c.Request.Context(), actorFrom(c), c.Query("status"))
	render(c, "trucks.html", views.Data{
		Title:   "Trucks",
		Page:    page,
		Choices: constants.TruckStatuses(),
	}, page.Error)
}

// NewTruck 新增车辆表单
func (h *Handler) NewTruck(c *gin.Context) {
	render(c, "truck_form.html", h.truckFormData(c, service.TruckForm{}), "")
}

// CreateTruck 提交新增车辆
func (h *Handler) CreateTruck(c *gin.Context) {
	var form service.TruckForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "truck_form.html", h.truckFormData(c, form), bindError(c, err))
		return
	}
	created, err := h.TruckService.Create(c.Request.Context(), actorFrom(c), form)
	if err != nil {
		renderForm(c, "truck_form.html", h.truckFormData(c, form), err)
		return
	}
	redirect(c, http.StatusSeeOther, "/trucks", created)
}

// ShowTruck 车辆详情
func (h *Handler) ShowTruck(c *gin.Context) {
	page := h.TruckService.Detail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "truck.html", views.Data{Title: "Truck Details", Page: page, ID: c.Param("id")}, page.Error)
}

// TruckStatusForm 车辆状态更新表单
func (h *Handler) TruckStatusForm(c *gin.Context) {
	form := service.TruckStatusForm{Status: c.Query("status")}
	render(c, "truck_status.html", truckStatusData(c.Param("id"), form), "")
}

// UpdateTruckStatus 提交车辆状态
func (h *Handler) UpdateTruckStatus(c *gin.Context) {
	id := c.Param("id")
	var form service.TruckStatusForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "truck_status.html", truckStatusData(id, form), bindError(c, err))
		return
	}
	updated, err := h.TruckService.UpdateStatus(c.Request.Context(), actorFrom(c), id, form)
	if err != nil {
		renderForm(c, "truck_status.html", truckStatusData(id, form), err)
		return
	}
	redirect(c, http.StatusSeeOther, "/trucks/"+url.PathEscape(id), updated)
}

func (h *Handler) truckFormData(c *gin.Context, form service.TruckForm) views.Data {
	branches, branchErr := h.BranchService.Options(c.Request.Context(), actorFrom(c))
	return views.Data{
		Title:       "Add Truck",
		Form:        form,
		Branches:    branches,
		BranchError: branchErr,
	}
}

func truckStatusData(id string, form service.TruckStatusForm) views.Data {
	return views.Data{
		Title:   "Update Truck Status",
		Form:    form,
		ID:      id,
		Choices: constants.TruckStatuses(),
	}
}
