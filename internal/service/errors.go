package service

import "errors"

var (
	// ErrUnknownQuickAction 未知的快捷操作
	ErrUnknownQuickAction = errors.New("unknown quick action")
	// ErrQuickActionForbidden 当前角色不可使用该快捷操作
	ErrQuickActionForbidden = errors.New("quick action not allowed for role")
	// ErrNoTruckForQuickAction 网点下没有可操作的车辆
	ErrNoTruckForQuickAction = errors.New("no truck available for quick action")
	// ErrBranchRequired 当前用户未绑定网点
	ErrBranchRequired = errors.New("branch is required")
	// ErrNoAccessToken 登录响应中没有可用的访问令牌
	ErrNoAccessToken = errors.New("login failed: no access token returned")
)

// FormError 表单校验错误，Message 直接展示在表单内
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

func formError(field, message string) *FormError {
	return &FormError{Field: field, Message: message}
}
