package console

import (
	"github.com/tcc-console/internal/http/views"

	"github.com/gin-gonic/gin"
)

// ListDispatches 发车列表
func (h *Handler) ListDispatches(c *gin.Context) {
	page := h.DispatchService.List(c.Request.Context(), actorFrom(c))
	render(c, "dispatches.html", views.Data{Title: "Dispatches", Page: page}, page.Error)
}

// ShowDispatch 发车详情及随车托运单
func (h *Handler) ShowDispatch(c *gin.Context) {
	page := h.DispatchService.Detail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "dispatch.html", views.Data{Title: "Dispatch Details", Page: page, ID: c.Param("id")}, page.Error)
}

// DispatchManifest 可打印的随车清单
func (h *Handler) DispatchManifest(c *gin.Context) {
	page := h.DispatchService.Detail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "manifest.html", views.Data{Title: "Dispatch Manifest", Page: page, ID: c.Param("id")}, page.Error)
}

// ListInvoices 账单列表
func (h *Handler) ListInvoices(c *gin.Context) {
	page := h.DispatchService.ListInvoices(c.Request.Context(), actorFrom(c))
	render(c, "invoices.html", views.Data{Title: "Invoices", Page: page}, page.Error)
}

// ShowInvoice 账单详情
func (h *Handler) ShowInvoice(c *gin.Context) {
	page := h.DispatchService.InvoiceDetail(c.Request.Context(), actorFrom(c), c.Param("id"))
	render(c, "invoice.html", views.Data{Title: "Invoice Details", Page: page, ID: c.Param("id")}, page.Error)
}
