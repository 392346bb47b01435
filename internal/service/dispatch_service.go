package service

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/tccapi"
)

// manifestUnknown 清单中无法确定的字段
const manifestUnknown = "N/A"

// DispatchService 发车与账单页面服务（只读）
type DispatchService struct {
	api *tccapi.Client
}

// NewDispatchService 创建发车与账单页面服务
func NewDispatchService(api *tccapi.Client) *DispatchService {
	return &DispatchService{api: api}
}

// DispatchListPage 发车列表页
type DispatchListPage struct {
	Error      string            `json:"error,omitempty"`
	Dispatches []tccapi.Dispatch `json:"dispatches"`
}

// DispatchDetailPage 发车详情页，同时用于打印清单
type DispatchDetailPage struct {
	Error        string               `json:"error,omitempty"`
	Dispatch     *tccapi.Dispatch     `json:"dispatch,omitempty"`
	TruckNumber  string               `json:"truck_number"`
	Consignments []tccapi.Consignment `json:"consignments"`
}

// InvoiceListPage 账单列表页
type InvoiceListPage struct {
	Error    string           `json:"error,omitempty"`
	Invoices []tccapi.Invoice `json:"invoices"`
}

// InvoiceDetailPage 账单详情页
type InvoiceDetailPage struct {
	Error   string          `json:"error,omitempty"`
	Invoice *tccapi.Invoice `json:"invoice,omitempty"`
}

// List 加载发车列表
func (s *DispatchService) List(ctx context.Context, actor Actor) DispatchListPage {
	items, err := scopedClient(s.api, actor).ListDispatches(ctx)
	if err != nil {
		logLoadFailure(actor, "dispatches", err)
		return DispatchListPage{Error: MsgLoadDispatches, Dispatches: []tccapi.Dispatch{}}
	}
	return DispatchListPage{Dispatches: items}
}

// Detail 加载发车详情与所载托运单
// 车牌号查询失败不影响页面，清单中显示 N/A。
func (s *DispatchService) Detail(ctx context.Context, actor Actor, id string) DispatchDetailPage {
	failed := DispatchDetailPage{Error: MsgLoadDispatchDetails, Consignments: []tccapi.Consignment{}}
	client := scopedClient(s.api, actor)
	dispatch, err := client.GetDispatch(ctx, id)
	if err != nil {
		logLoadFailure(actor, "dispatch_detail", err)
		return failed
	}
	consignments, err := client.ListConsignments(ctx)
	if err != nil {
		logLoadFailure(actor, "dispatch_detail", err)
		return failed
	}
	page := DispatchDetailPage{
		Dispatch:     dispatch,
		TruckNumber:  manifestUnknown,
		Consignments: ConsignmentsForDispatch(consignments, dispatch.ID),
	}
	if strings.TrimSpace(dispatch.TruckID) == "" {
		return page
	}
	truck, err := client.GetTruck(ctx, dispatch.TruckID)
	if err != nil {
		logLoadFailure(actor, "dispatch_manifest_truck", err)
		return page
	}
	if number := strings.TrimSpace(truck.TruckNumber); number != "" {
		page.TruckNumber = number
	}
	return page
}

// ListInvoices 加载账单列表
func (s *DispatchService) ListInvoices(ctx context.Context, actor Actor) InvoiceListPage {
	items, err := scopedClient(s.api, actor).ListInvoices(ctx)
	if err != nil {
		logLoadFailure(actor, "invoices", err)
		return InvoiceListPage{Error: MsgLoadInvoices, Invoices: []tccapi.Invoice{}}
	}
	return InvoiceListPage{Invoices: items}
}

// InvoiceDetail 加载账单详情
func (s *DispatchService) InvoiceDetail(ctx context.Context, actor Actor, id string) InvoiceDetailPage {
	invoice, err := scopedClient(s.api, actor).GetInvoice(ctx, id)
	if err != nil {
		logLoadFailure(actor, "invoice_detail", err)
		return InvoiceDetailPage{Error: MsgLoadInvoiceDetails}
	}
	return InvoiceDetailPage{Invoice: invoice}
}
