package service

import (
	"context"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/tccapi"
)

// TruckService 车辆页面服务
type TruckService struct {
	api  *tccapi.Client
	logs *ActionLogService
}

// NewTruckService 创建车辆页面服务
func NewTruckService(api *tccapi.Client, logs *ActionLogService) *TruckService {
	return &TruckService{api: api, logs: logs}
}

// TruckListPage 车辆列表页
type TruckListPage struct {
	Error    string         `json:"error,omitempty"`
	Status   string         `json:"status"`
	BranchID *string        `json:"branch_id"`
	Trucks   []tccapi.Truck `json:"trucks"`
}

// TruckDetailPage 车辆详情页，附带该车近期发车次数
type TruckDetailPage struct {
	Error string              `json:"error,omitempty"`
	Truck *tccapi.Truck       `json:"truck,omitempty"`
	Usage []tccapi.TruckUsage `json:"usage"`
}

// List 加载车辆列表，并按当前用户网点与状态在本地过滤
func (s *TruckService) List(ctx context.Context, actor Actor, status string) TruckListPage {
	page := TruckListPage{Status: normalizeStatusFilter(status), Trucks: []tccapi.Truck{}}
	client := scopedClient(s.api, actor)
	items, err := client.ListTrucks(ctx)
	if err != nil {
		logLoadFailure(actor, "trucks", err)
		page.Error = MsgLoadTrucks
		return page
	}
	me, err := client.GetCurrentUser(ctx)
	if err != nil {
		logLoadFailure(actor, "trucks", err)
		page.Error = MsgLoadTrucks
		return page
	}
	page.BranchID = me.BranchID
	page.Trucks = FilterTrucksByStatus(FilterTrucksByBranch(items, me.BranchID), page.Status)
	return page
}

// Detail 加载车辆详情
func (s *TruckService) Detail(ctx context.Context, actor Actor, id string) TruckDetailPage {
	client := scopedClient(s.api, actor)
	truck, err := client.GetTruck(ctx, id)
	if err != nil {
		logLoadFailure(actor, "truck_detail", err)
		return TruckDetailPage{Error: MsgLoadTruckDetails, Usage: []tccapi.TruckUsage{}}
	}
	usage, err := client.GetTruckUsage(ctx, constants.TruckUsageDays)
	if err != nil {
		logLoadFailure(actor, "truck_detail", err)
		return TruckDetailPage{Error: MsgLoadTruckDetails, Usage: []tccapi.TruckUsage{}}
	}
	own := make([]tccapi.TruckUsage, 0, 1)
	for _, item := range usage {
		if item.TruckID == truck.ID {
			own = append(own, item)
		}
	}
	return TruckDetailPage{Truck: truck, Usage: own}
}

// Create 新建车辆
func (s *TruckService) Create(ctx context.Context, actor Actor, form TruckForm) (*tccapi.Truck, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	truck, err := scopedClient(s.api, actor).CreateTruck(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionTruckCreate,
		TargetType: "truck",
		TargetID:   truck.ID,
		Detail:     models.JSON{"truck_number": req.TruckNumber, "capacity_cubic_meters": req.CapacityCubicMeters},
	})
	return truck, nil
}

// UpdateStatus 提交车辆状态局部更新
func (s *TruckService) UpdateStatus(ctx context.Context, actor Actor, id string, form TruckStatusForm) (*tccapi.Truck, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	truck, err := scopedClient(s.api, actor).UpdateTruck(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionTruckStatusUpdate,
		TargetType: "truck",
		TargetID:   id,
		Detail:     models.JSON{"status": string(req.Status)},
	})
	return truck, nil
}
