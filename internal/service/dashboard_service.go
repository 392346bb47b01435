package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/tccapi"
)

// averageUnavailable 平均时长缺失或为零时的展示值
const averageUnavailable = "N/A"

var secondsPerHour = decimal.NewFromInt(3600)

// DashboardService 仪表盘服务
type DashboardService struct {
	api *tccapi.Client
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(api *tccapi.Client) *DashboardService {
	return &DashboardService{api: api}
}

// QuickAction 仪表盘快捷操作
type QuickAction struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Roles       []string `json:"-"`
}

var quickActions = []QuickAction{
	{
		Key:         constants.QuickActionMarkArrived,
		Title:       "Mark Truck Arrived",
		Description: "Update truck status to available",
		Roles:       []string{constants.RoleManager, constants.RoleStaff},
	},
	{
		Key:         constants.QuickActionCreateConsignment,
		Title:       "Create Consignment",
		Description: "Add new shipment",
		Roles:       []string{constants.RoleManager, constants.RoleStaff},
	},
	{
		Key:         constants.QuickActionBranchStats,
		Title:       "View Branch Stats",
		Description: "Branch performance metrics",
		Roles:       []string{constants.RoleManager},
	},
	{
		Key:         constants.QuickActionPendingDispatches,
		Title:       "Pending Dispatches",
		Description: "View awaiting consignments",
		Roles:       []string{constants.RoleManager, constants.RoleStaff},
	},
}

// DashboardPage 仪表盘页
type DashboardPage struct {
	Error             string              `json:"error,omitempty"`
	Role              string              `json:"role"`
	TotalConsignments int                 `json:"total_consignments"`
	TotalRevenue      string              `json:"total_revenue"`
	AverageWaitTime   string              `json:"average_wait_time"`
	AverageIdleTime   string              `json:"average_idle_time"`
	TruckUsage        []tccapi.TruckUsage `json:"truck_usage"`
	QuickActions      []QuickAction       `json:"quick_actions"`
}

// Load 依次加载仪表盘数据，任一请求失败即整页报错
func (s *DashboardService) Load(ctx context.Context, actor Actor) DashboardPage {
	role := strings.ToUpper(strings.TrimSpace(actor.Role))
	failed := DashboardPage{
		Error:        MsgLoadDashboard,
		Role:         role,
		TruckUsage:   []tccapi.TruckUsage{},
		QuickActions: QuickActionsFor(role),
	}
	client := scopedClient(s.api, actor)

	consignments, err := client.ListConsignments(ctx)
	if err != nil {
		logLoadFailure(actor, "dashboard", err)
		return failed
	}
	invoices, err := client.ListInvoices(ctx)
	if err != nil {
		logLoadFailure(actor, "dashboard", err)
		return failed
	}
	wait, err := client.GetAverageWaitTime(ctx)
	if err != nil {
		logLoadFailure(actor, "dashboard", err)
		return failed
	}
	idle, err := client.GetAverageIdleTime(ctx)
	if err != nil {
		logLoadFailure(actor, "dashboard", err)
		return failed
	}
	usage, err := client.GetTruckUsage(ctx, constants.TruckUsageDays)
	if err != nil {
		logLoadFailure(actor, "dashboard", err)
		return failed
	}
	if usage == nil {
		usage = []tccapi.TruckUsage{}
	}

	return DashboardPage{
		Role:              role,
		TotalConsignments: len(consignments),
		TotalRevenue:      FormatRevenue(TotalRevenue(invoices)),
		AverageWaitTime:   FormatHours(wait.Seconds),
		AverageIdleTime:   FormatHours(idle.Seconds),
		TruckUsage:        usage,
		QuickActions:      QuickActionsFor(role),
	}
}

// TotalRevenue 汇总账单金额
func TotalRevenue(invoices []tccapi.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, invoice := range invoices {
		total = total.Add(invoice.Amount)
	}
	return total
}

// FormatRevenue 金额展示为 $ 加两位小数
func FormatRevenue(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatHours 秒数换算为小时并保留两位小数，零值展示 N/A
func FormatHours(seconds float64) string {
	if seconds == 0 {
		return averageUnavailable
	}
	hours := decimal.NewFromFloat(seconds).Div(secondsPerHour)
	return fmt.Sprintf("%s hours", hours.StringFixed(2))
}

// QuickActionsFor 返回角色可用的快捷操作
func QuickActionsFor(role string) []QuickAction {
	role = strings.ToUpper(strings.TrimSpace(role))
	out := make([]QuickAction, 0, len(quickActions))
	for _, action := range quickActions {
		if quickActionAllowed(action, role) {
			out = append(out, action)
		}
	}
	return out
}

func quickActionAllowed(action QuickAction, role string) bool {
	for _, allowed := range action.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// ResolveQuickAction 将快捷操作解析为跳转地址
func ResolveQuickAction(key, role string, branchID *string, trucks []tccapi.Truck) (string, error) {
	if err := checkQuickAction(key, role); err != nil {
		return "", err
	}

	switch key {
	case constants.QuickActionMarkArrived:
		truck := pickArrivalTruck(FilterTrucksByBranch(trucks, branchID))
		if truck == nil {
			return "", ErrNoTruckForQuickAction
		}
		return "/trucks/" + url.PathEscape(truck.ID) + "/status", nil
	case constants.QuickActionCreateConsignment:
		return "/consignments/new", nil
	case constants.QuickActionBranchStats:
		branch := branchValue(branchID)
		if branch == "" {
			return "", ErrBranchRequired
		}
		return "/branches/" + url.PathEscape(branch) + "/stats", nil
	default:
		return "/consignments?status=" + constants.ConsignmentStatusAwaitingDispatch, nil
	}
}

func checkQuickAction(key, role string) error {
	for _, action := range quickActions {
		if action.Key != key {
			continue
		}
		if !quickActionAllowed(action, strings.ToUpper(strings.TrimSpace(role))) {
			return ErrQuickActionForbidden
		}
		return nil
	}
	return ErrUnknownQuickAction
}

// pickArrivalTruck 优先取在途车辆，否则取第一辆
func pickArrivalTruck(trucks []tccapi.Truck) *tccapi.Truck {
	if len(trucks) == 0 {
		return nil
	}
	for i := range trucks {
		if trucks[i].Status == tccapi.TruckInTransit {
			return &trucks[i]
		}
	}
	return &trucks[0]
}

// QuickAction 查询当前用户网点与车辆后解析快捷操作
func (s *DashboardService) QuickAction(ctx context.Context, actor Actor, key string) (string, error) {
	if err := checkQuickAction(key, actor.Role); err != nil {
		return "", err
	}
	client := scopedClient(s.api, actor)
	switch key {
	case constants.QuickActionCreateConsignment, constants.QuickActionPendingDispatches:
		return ResolveQuickAction(key, actor.Role, nil, nil)
	}
	me, err := client.GetCurrentUser(ctx)
	if err != nil {
		return "", err
	}
	var trucks []tccapi.Truck
	if key == constants.QuickActionMarkArrived {
		trucks, err = client.ListTrucks(ctx)
		if err != nil {
			return "", err
		}
	}
	return ResolveQuickAction(key, actor.Role, me.BranchID, trucks)
}
