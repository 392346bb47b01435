package service

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/tccapi"
)

// ConsignmentService 托运单页面服务
type ConsignmentService struct {
	api  *tccapi.Client
	logs *ActionLogService
}

// NewConsignmentService 创建托运单页面服务
func NewConsignmentService(api *tccapi.Client, logs *ActionLogService) *ConsignmentService {
	return &ConsignmentService{api: api, logs: logs}
}

// ConsignmentListPage 托运单列表页
type ConsignmentListPage struct {
	Error        string               `json:"error,omitempty"`
	Status       string               `json:"status"`
	BranchID     *string              `json:"branch_id"`
	Consignments []tccapi.Consignment `json:"consignments"`
}

// ConsignmentDetailPage 托运单详情页，已开票时附带账单
type ConsignmentDetailPage struct {
	Error       string              `json:"error,omitempty"`
	Consignment *tccapi.Consignment `json:"consignment,omitempty"`
	Invoice     *tccapi.Invoice     `json:"invoice,omitempty"`
}

// ConsignmentStatsPage 按目的地统计页
type ConsignmentStatsPage struct {
	Error       string                   `json:"error,omitempty"`
	Destination string                   `json:"destination"`
	Stats       *tccapi.ConsignmentStats `json:"stats,omitempty"`
}

// List 加载托运单列表，并按当前用户网点与状态在本地过滤
func (s *ConsignmentService) List(ctx context.Context, actor Actor, status string) ConsignmentListPage {
	page := ConsignmentListPage{Status: normalizeStatusFilter(status), Consignments: []tccapi.Consignment{}}
	client := scopedClient(s.api, actor)
	items, err := client.ListConsignments(ctx)
	if err != nil {
		logLoadFailure(actor, "consignments", err)
		page.Error = MsgLoadConsignments
		return page
	}
	me, err := client.GetCurrentUser(ctx)
	if err != nil {
		logLoadFailure(actor, "consignments", err)
		page.Error = MsgLoadConsignments
		return page
	}
	page.BranchID = me.BranchID
	page.Consignments = FilterConsignmentsByStatus(FilterConsignmentsByBranch(items, me.BranchID), page.Status)
	return page
}

// Detail 加载托运单详情
func (s *ConsignmentService) Detail(ctx context.Context, actor Actor, id string) ConsignmentDetailPage {
	client := scopedClient(s.api, actor)
	consignment, err := client.GetConsignment(ctx, id)
	if err != nil {
		logLoadFailure(actor, "consignment_detail", err)
		return ConsignmentDetailPage{Error: MsgLoadConsignmentDetails}
	}
	page := ConsignmentDetailPage{Consignment: consignment}
	if consignment.InvoiceID != nil && strings.TrimSpace(*consignment.InvoiceID) != "" {
		invoice, err := client.GetInvoice(ctx, *consignment.InvoiceID)
		if err != nil {
			logLoadFailure(actor, "consignment_detail", err)
			return ConsignmentDetailPage{Error: MsgLoadConsignmentDetails}
		}
		page.Invoice = invoice
	}
	return page
}

// Create 新建托运单
func (s *ConsignmentService) Create(ctx context.Context, actor Actor, form ConsignmentForm) (*tccapi.Consignment, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	consignment, err := scopedClient(s.api, actor).CreateConsignment(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionConsignmentCreate,
		TargetType: "consignment",
		TargetID:   consignment.ID,
		Detail: models.JSON{
			"origin_branch_id":    req.OriginBranchID,
			"destination_address": req.DestinationAddress,
			"volume_cubic_meters": req.VolumeCubicMeters,
		},
	})
	return consignment, nil
}

// UpdateStatus 提交托运单状态局部更新
func (s *ConsignmentService) UpdateStatus(ctx context.Context, actor Actor, id string, form ConsignmentStatusForm) (*tccapi.Consignment, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	consignment, err := scopedClient(s.api, actor).UpdateConsignment(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionConsignmentStatusUpdate,
		TargetType: "consignment",
		TargetID:   id,
		Detail:     models.JSON{"status": string(req.Status)},
	})
	return consignment, nil
}

// Stats 按目的地查询托运单统计，目的地为空时不发起请求
func (s *ConsignmentService) Stats(ctx context.Context, actor Actor, destination string) ConsignmentStatsPage {
	page := ConsignmentStatsPage{Destination: strings.TrimSpace(destination)}
	if page.Destination == "" {
		return page
	}
	stats, err := scopedClient(s.api, actor).GetConsignmentStats(ctx, page.Destination)
	if err != nil {
		logLoadFailure(actor, "consignment_stats", err)
		page.Error = MsgLoadConsignmentStats
		return page
	}
	page.Stats = stats
	return page
}

func normalizeStatusFilter(status string) string {
	if normalized, ok := statusFilter(status); ok {
		return normalized
	}
	return constants.StatusFilterAll
}
