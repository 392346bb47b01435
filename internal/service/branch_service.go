package service

import (
	"context"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/tccapi"
)

// BranchService 网点页面服务
type BranchService struct {
	api  *tccapi.Client
	logs *ActionLogService
}

// NewBranchService 创建网点页面服务
func NewBranchService(api *tccapi.Client, logs *ActionLogService) *BranchService {
	return &BranchService{api: api, logs: logs}
}

// BranchListPage 网点列表页
type BranchListPage struct {
	Error    string          `json:"error,omitempty"`
	Branches []tccapi.Branch `json:"branches"`
}

// BranchDetailPage 网点详情页
type BranchDetailPage struct {
	Error  string         `json:"error,omitempty"`
	Branch *tccapi.Branch `json:"branch,omitempty"`
}

// BranchStats 网点运营概览
type BranchStats struct {
	TotalTrucks         int `json:"total_trucks"`
	AvailableTrucks     int `json:"available_trucks"`
	TotalConsignments   int `json:"total_consignments"`
	PendingConsignments int `json:"pending_consignments"`
}

// BranchStatsPage 网点统计页
type BranchStatsPage struct {
	Error    string       `json:"error,omitempty"`
	BranchID string       `json:"branch_id"`
	Stats    *BranchStats `json:"stats,omitempty"`
}

// List 加载网点列表
func (s *BranchService) List(ctx context.Context, actor Actor) BranchListPage {
	branches, err := scopedClient(s.api, actor).ListBranches(ctx)
	if err != nil {
		logLoadFailure(actor, "branches", err)
		return BranchListPage{Error: MsgLoadBranches, Branches: []tccapi.Branch{}}
	}
	return BranchListPage{Branches: branches}
}

// Options 加载表单中的网点下拉选项，失败时返回对应提示
func (s *BranchService) Options(ctx context.Context, actor Actor) ([]tccapi.Branch, string) {
	branches, err := scopedClient(s.api, actor).ListBranches(ctx)
	if err != nil {
		logLoadFailure(actor, "branch_options", err)
		return []tccapi.Branch{}, MsgLoadBranchOptions
	}
	return branches, ""
}

// Detail 加载网点详情
func (s *BranchService) Detail(ctx context.Context, actor Actor, id string) BranchDetailPage {
	branch, err := scopedClient(s.api, actor).GetBranch(ctx, id)
	if err != nil {
		logLoadFailure(actor, "branch_detail", err)
		return BranchDetailPage{Error: MsgLoadBranchDetails}
	}
	return BranchDetailPage{Branch: branch}
}

// Create 新建网点
func (s *BranchService) Create(ctx context.Context, actor Actor, form BranchForm) (*tccapi.Branch, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	branch, err := scopedClient(s.api, actor).CreateBranch(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionBranchCreate,
		TargetType: "branch",
		TargetID:   branch.ID,
		Detail:     models.JSON{"name": branch.Name, "is_hq": branch.IsHQ},
	})
	return branch, nil
}

// Stats 统计网点车辆与托运单，数据取自完整列表后在本地按网点过滤
func (s *BranchService) Stats(ctx context.Context, actor Actor, branchID string) BranchStatsPage {
	page := BranchStatsPage{BranchID: branchID}
	client := scopedClient(s.api, actor)
	trucks, err := client.ListTrucks(ctx)
	if err != nil {
		logLoadFailure(actor, "branch_stats", err)
		page.Error = MsgLoadBranchStats
		return page
	}
	consignments, err := client.ListConsignments(ctx)
	if err != nil {
		logLoadFailure(actor, "branch_stats", err)
		page.Error = MsgLoadBranchStats
		return page
	}
	page.Stats = ComputeBranchStats(branchID, trucks, consignments)
	return page
}

// ComputeBranchStats 计算单个网点的车辆与托运单概览
func ComputeBranchStats(branchID string, trucks []tccapi.Truck, consignments []tccapi.Consignment) *BranchStats {
	branchTrucks := FilterTrucksByBranch(trucks, &branchID)
	branchConsignments := FilterConsignmentsByBranch(consignments, &branchID)
	return &BranchStats{
		TotalTrucks:         len(branchTrucks),
		AvailableTrucks:     len(FilterTrucksByStatus(branchTrucks, constants.TruckStatusAvailable)),
		TotalConsignments:   len(branchConsignments),
		PendingConsignments: len(FilterConsignmentsByStatus(branchConsignments, constants.ConsignmentStatusAwaitingDispatch)),
	}
}
