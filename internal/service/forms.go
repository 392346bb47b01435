package service

import (
	"strconv"
	"strings"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/tccapi"
)

// BranchForm 新建网点表单
type BranchForm struct {
	Name string `form:"name" json:"name"`
	IsHQ bool   `form:"is_hq" json:"is_hq"`
}

// Request 校验并转换为接口请求
func (f BranchForm) Request() (tccapi.BranchRequest, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return tccapi.BranchRequest{}, formError("name", "Branch name is required.")
	}
	return tccapi.BranchRequest{Name: name, IsHQ: f.IsHQ}, nil
}

// TruckForm 新建车辆表单
type TruckForm struct {
	TruckNumber     string `form:"truck_number" json:"truck_number"`
	Capacity        string `form:"capacity_cubic_meters" json:"capacity_cubic_meters"`
	CurrentBranchID string `form:"current_branch_id" json:"current_branch_id"`
}

// Request 校验并转换为接口请求，容量为空时使用默认值，网点为空时提交 null
func (f TruckForm) Request() (tccapi.TruckRequest, error) {
	number := strings.TrimSpace(f.TruckNumber)
	if number == "" {
		return tccapi.TruckRequest{}, formError("truck_number", "Truck number is required.")
	}
	capacity := constants.DefaultTruckCapacity
	if raw := strings.TrimSpace(f.Capacity); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return tccapi.TruckRequest{}, formError("capacity_cubic_meters", "Capacity must be a positive number.")
		}
		capacity = parsed
	}
	return tccapi.TruckRequest{
		TruckNumber:         number,
		CapacityCubicMeters: capacity,
		CurrentBranchID:     optionalString(f.CurrentBranchID),
	}, nil
}

// ConsignmentForm 新建托运单表单，所有字段必填
type ConsignmentForm struct {
	Volume             string `form:"volume_cubic_meters" json:"volume_cubic_meters"`
	DestinationAddress string `form:"destination_address" json:"destination_address"`
	SenderAddress      string `form:"sender_address" json:"sender_address"`
	ReceiverName       string `form:"receiver_name" json:"receiver_name"`
	OriginBranchID     string `form:"origin_branch_id" json:"origin_branch_id"`
}

// Request 校验并转换为接口请求
func (f ConsignmentForm) Request() (tccapi.ConsignmentRequest, error) {
	volume, err := strconv.ParseFloat(strings.TrimSpace(f.Volume), 64)
	if err != nil || volume <= 0 {
		return tccapi.ConsignmentRequest{}, formError("volume_cubic_meters", "Volume must be a positive number.")
	}
	required := []struct {
		field string
		value string
		label string
	}{
		{"destination_address", f.DestinationAddress, "Destination address"},
		{"sender_address", f.SenderAddress, "Sender address"},
		{"receiver_name", f.ReceiverName, "Receiver name"},
		{"origin_branch_id", f.OriginBranchID, "Origin branch"},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return tccapi.ConsignmentRequest{}, formError(item.field, item.label+" is required.")
		}
	}
	return tccapi.ConsignmentRequest{
		VolumeCubicMeters:  volume,
		DestinationAddress: strings.TrimSpace(f.DestinationAddress),
		SenderAddress:      strings.TrimSpace(f.SenderAddress),
		ReceiverName:       strings.TrimSpace(f.ReceiverName),
		OriginBranchID:     strings.TrimSpace(f.OriginBranchID),
	}, nil
}

// RegisterForm 注册表单，角色默认 STAFF
type RegisterForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
	BranchID string `form:"branch_id" json:"branch_id"`
}

// Normalize 校验注册表单，返回规范化后的角色与网点
func (f RegisterForm) Normalize() (RegisterForm, *string, error) {
	out := RegisterForm{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
		Role:     strings.ToUpper(strings.TrimSpace(f.Role)),
	}
	if out.Username == "" || out.Password == "" {
		return out, nil, formError("username", "Username and password are required.")
	}
	if out.Role == "" {
		out.Role = constants.RoleStaff
	}
	if !tccapi.Role(out.Role).Valid() {
		return out, nil, formError("role", "Role must be STAFF or MANAGER.")
	}
	branch := optionalString(f.BranchID)
	if branch != nil {
		out.BranchID = *branch
	}
	return out, branch, nil
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate 校验登录表单
func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" || f.Password == "" {
		return formError("username", "Username and password are required.")
	}
	return nil
}

// TruckStatusForm 车辆状态更新表单
type TruckStatusForm struct {
	Status string `form:"status" json:"status"`
}

// Request 校验状态取值
func (f TruckStatusForm) Request() (tccapi.TruckUpdate, error) {
	status := tccapi.TruckStatus(strings.ToUpper(strings.TrimSpace(f.Status)))
	if !status.Valid() {
		return tccapi.TruckUpdate{}, formError("status", "Please select a valid truck status.")
	}
	return tccapi.TruckUpdate{Status: status}, nil
}

// ConsignmentStatusForm 托运单状态更新表单
type ConsignmentStatusForm struct {
	Status string `form:"status" json:"status"`
}

// Request 校验状态取值
func (f ConsignmentStatusForm) Request() (tccapi.ConsignmentUpdate, error) {
	status := tccapi.ConsignmentStatus(strings.ToUpper(strings.TrimSpace(f.Status)))
	if !status.Valid() {
		return tccapi.ConsignmentUpdate{}, formError("status", "Please select a valid consignment status.")
	}
	return tccapi.ConsignmentUpdate{Status: status}, nil
}

// UserUpdateForm 用户编辑表单，空字段不提交
// OriginalBranchID 为页面加载时用户所属网点，网点被清空时据此提交 null。
type UserUpdateForm struct {
	Username         string `form:"username" json:"username"`
	Role             string `form:"role" json:"role"`
	BranchID         string `form:"branch_id" json:"branch_id"`
	OriginalBranchID string `form:"original_branch_id" json:"original_branch_id"`
}

// Request 校验并转换为局部更新
func (f UserUpdateForm) Request() (tccapi.UserUpdate, error) {
	var update tccapi.UserUpdate
	update.Username = optionalString(f.Username)
	if raw := strings.TrimSpace(f.Role); raw != "" {
		role := tccapi.Role(strings.ToUpper(raw))
		if !role.Valid() {
			return tccapi.UserUpdate{}, formError("role", "Role must be STAFF or MANAGER.")
		}
		update.Role = &role
	}
	update.BranchID = optionalString(f.BranchID)
	update.ClearBranch = update.BranchID == nil && optionalString(f.OriginalBranchID) != nil
	if update.Username == nil && update.Role == nil && update.BranchID == nil && !update.ClearBranch {
		return tccapi.UserUpdate{}, formError("username", "No changes to save.")
	}
	return update, nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
