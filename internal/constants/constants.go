package constants

// 用户角色常量（与远端 API 令牌中的 role 声明对应，统一转为大写）
const (
	RoleStaff   = "STAFF"
	RoleManager = "MANAGER"
)

// 车辆状态常量
const (
	TruckStatusAvailable = "AVAILABLE"
	TruckStatusInTransit = "IN_TRANSIT"
	TruckStatusIdle      = "IDLE"
)

// 托运单状态常量
const (
	ConsignmentStatusAwaitingDispatch = "AWAITING_DISPATCH"
	ConsignmentStatusDispatched       = "DISPATCHED"
	ConsignmentStatusDelivered        = "DELIVERED"
)

// StatusFilterAll 状态筛选下拉框中的“全部”选项
const StatusFilterAll = "ALL"

// 快捷操作常量
const (
	QuickActionMarkArrived       = "mark-arrived"
	QuickActionCreateConsignment = "create-consignment"
	QuickActionBranchStats       = "branch-stats"
	QuickActionPendingDispatches = "pending-dispatches"
)

// 页面路径常量
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathAccess    = "/access"
)

// 会话存储驱动常量
const (
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
)

// 操作日志动作常量
const (
	ActionLogin                   = "login"
	ActionLogout                  = "logout"
	ActionRegister                = "register"
	ActionBranchCreate            = "branch_create"
	ActionTruckCreate             = "truck_create"
	ActionTruckStatusUpdate       = "truck_status_update"
	ActionConsignmentCreate       = "consignment_create"
	ActionConsignmentStatusUpdate = "consignment_status_update"
	ActionUserUpdate              = "user_update"
	ActionUserDelete              = "user_delete"
	ActionPolicyGrant             = "page_policy_grant"
	ActionPolicyRevoke            = "page_policy_revoke"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskActionLog = "console:action_log"
)

// DefaultTruckCapacity 新建车辆时的默认容量（立方米）
const DefaultTruckCapacity = 500.0

// TruckUsageDays 仪表盘车辆使用统计的默认天数
const TruckUsageDays = 7

// TruckStatuses 车辆状态可选值
func TruckStatuses() []string {
	return []string{TruckStatusAvailable, TruckStatusInTransit, TruckStatusIdle}
}

// ConsignmentStatuses 托运单状态可选值
func ConsignmentStatuses() []string {
	return []string{ConsignmentStatusAwaitingDispatch, ConsignmentStatusDispatched, ConsignmentStatusDelivered}
}

// Roles 可注册的角色
func Roles() []string {
	return []string{RoleStaff, RoleManager}
}
