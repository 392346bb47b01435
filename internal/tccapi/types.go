package tccapi

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// TruckStatus 车辆状态
type TruckStatus string

// 车辆状态取值
const (
	TruckAvailable TruckStatus = "AVAILABLE"
	TruckInTransit TruckStatus = "IN_TRANSIT"
	TruckIdle      TruckStatus = "IDLE"
)

// UnmarshalJSON 统一转为大写
func (s *TruckStatus) UnmarshalJSON(b []byte) error {
	v, err := upperString(b)
	*s = TruckStatus(v)
	return err
}

// Valid 判断是否为合法的车辆状态
func (s TruckStatus) Valid() bool {
	switch s {
	case TruckAvailable, TruckInTransit, TruckIdle:
		return true
	}
	return false
}

// ConsignmentStatus 托运单状态
type ConsignmentStatus string

// 托运单状态取值
const (
	ConsignmentAwaitingDispatch ConsignmentStatus = "AWAITING_DISPATCH"
	ConsignmentDispatched       ConsignmentStatus = "DISPATCHED"
	ConsignmentDelivered        ConsignmentStatus = "DELIVERED"
)

// UnmarshalJSON 统一转为大写
func (s *ConsignmentStatus) UnmarshalJSON(b []byte) error {
	v, err := upperString(b)
	*s = ConsignmentStatus(v)
	return err
}

// Valid 判断是否为合法的托运单状态
func (s ConsignmentStatus) Valid() bool {
	switch s {
	case ConsignmentAwaitingDispatch, ConsignmentDispatched, ConsignmentDelivered:
		return true
	}
	return false
}

// Role 用户角色
type Role string

// 角色取值
const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
)

// UnmarshalJSON 统一转为大写
func (r *Role) UnmarshalJSON(b []byte) error {
	v, err := upperString(b)
	*r = Role(v)
	return err
}

// Valid 判断是否为合法角色
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleManager
}

func upperString(b []byte) (string, error) {
	if string(b) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(s)), nil
}

// Branch 网点
type Branch struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsHQ      bool   `json:"is_hq"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Truck 车辆
type Truck struct {
	ID                  string      `json:"id"`
	TruckNumber         string      `json:"truck_number"`
	CapacityCubicMeters float64     `json:"capacity_cubic_meters"`
	Status              TruckStatus `json:"status"`
	CurrentBranchID     *string     `json:"current_branch_id"`
	CreatedAt           string      `json:"created_at,omitempty"`
}

// Consignment 托运单
type Consignment struct {
	ID                 string            `json:"id"`
	VolumeCubicMeters  float64           `json:"volume_cubic_meters"`
	DestinationAddress string            `json:"destination_address"`
	SenderAddress      string            `json:"sender_address"`
	ReceiverName       string            `json:"receiver_name"`
	OriginBranchID     string            `json:"origin_branch_id"`
	Status             ConsignmentStatus `json:"status"`
	InvoiceID          *string           `json:"invoice_id"`
	DispatchID         *string           `json:"dispatch_id"`
	CreatedAt          string            `json:"created_at,omitempty"`
}

// Dispatch 发车记录
type Dispatch struct {
	ID                 string `json:"id"`
	TruckID            string `json:"truck_id"`
	DestinationAddress string `json:"destination_address"`
	CreatedAt          string `json:"created_at,omitempty"`
}

// Invoice 账单
type Invoice struct {
	ID            string          `json:"id"`
	ConsignmentID string          `json:"consignment_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// User 用户
type User struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      Role    `json:"role"`
	BranchID  *string `json:"branch_id"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// TruckUsage 车辆在统计周期内的发车次数
type TruckUsage struct {
	TruckID       string `json:"truck_id"`
	TruckNumber   string `json:"truck_number"`
	DispatchCount int    `json:"dispatch_count"`
}

// TruckStatusSummary 车辆状态概览
type TruckStatusSummary struct {
	ID          string      `json:"id"`
	TruckNumber string      `json:"truck_number"`
	Status      TruckStatus `json:"status"`
}

// ConsignmentStatusResult 托运单状态查询结果
type ConsignmentStatusResult struct {
	Status ConsignmentStatus `json:"status"`
}

// ConsignmentStats 按目的地统计的托运单汇总
type ConsignmentStats struct {
	Destination       string          `json:"destination"`
	TotalConsignments int             `json:"total_consignments"`
	TotalVolume       float64         `json:"total_volume"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

// AverageWaitTime 托运单平均等待时长
type AverageWaitTime struct {
	Seconds float64 `json:"average_wait_time_seconds"`
}

// AverageIdleTime 车辆平均空闲时长
type AverageIdleTime struct {
	Seconds float64 `json:"average_idle_time_seconds"`
}

// LoginResult 登录响应
// Raw 为原始响应体，会话层原样持久化。
type LoginResult struct {
	AccessToken string
	Raw         json.RawMessage
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Role     Role    `json:"role"`
	BranchID *string `json:"branch_id"`
}

// BranchRequest 新建网点请求
type BranchRequest struct {
	Name string `json:"name"`
	IsHQ bool   `json:"is_hq"`
}

// TruckRequest 新建车辆请求
type TruckRequest struct {
	TruckNumber         string  `json:"truck_number"`
	CapacityCubicMeters float64 `json:"capacity_cubic_meters"`
	CurrentBranchID     *string `json:"current_branch_id"`
}

// TruckUpdate 车辆局部更新
type TruckUpdate struct {
	Status          TruckStatus `json:"status,omitempty"`
	CurrentBranchID *string     `json:"current_branch_id,omitempty"`
}

// ConsignmentRequest 新建托运单请求
type ConsignmentRequest struct {
	VolumeCubicMeters  float64 `json:"volume_cubic_meters"`
	DestinationAddress string  `json:"destination_address"`
	SenderAddress      string  `json:"sender_address"`
	ReceiverName       string  `json:"receiver_name"`
	OriginBranchID     string  `json:"origin_branch_id"`
}

// ConsignmentUpdate 托运单局部更新
type ConsignmentUpdate struct {
	Status ConsignmentStatus `json:"status"`
}

// UserUpdate 用户局部更新
// ClearBranch 为 true 且 BranchID 为空时提交 "branch_id": null，解除用户与网点的绑定。
type UserUpdate struct {
	Username    *string `json:"username,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	BranchID    *string `json:"branch_id,omitempty"`
	ClearBranch bool    `json:"-"`
}

// MarshalJSON 只输出有变化的字段
func (u UserUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, 3)
	if u.Username != nil {
		body["username"] = *u.Username
	}
	if u.Role != nil {
		body["role"] = *u.Role
	}
	switch {
	case u.BranchID != nil:
		body["branch_id"] = *u.BranchID
	case u.ClearBranch:
		body["branch_id"] = nil
	}
	return json.Marshal(body)
}
