package service

import (
	"errors"
	"strings"

	"github.com/tcc-console/internal/tccapi"
)

// 页面加载失败时展示的固定文案，不区分未找到、无权限与服务端错误
const (
	MsgLoadBranches           = "Failed to load branches."
	MsgLoadBranchDetails      = "Failed to load branch details."
	MsgLoadBranchStats        = "Failed to load branch stats."
	MsgLoadBranchOptions      = "Failed to load branches for selection."
	MsgLoadConsignments       = "Failed to load consignments."
	MsgLoadConsignmentDetails = "Failed to load consignment details."
	MsgLoadConsignmentStats   = "Failed to load consignment stats."
	MsgLoadTrucks             = "Failed to load trucks."
	MsgLoadTruckDetails       = "Failed to load truck details."
	MsgLoadDispatches         = "Failed to load dispatches."
	MsgLoadDispatchDetails    = "Failed to load dispatch details."
	MsgLoadInvoices           = "Failed to load invoices."
	MsgLoadInvoiceDetails     = "Failed to load invoice details."
	MsgLoadUsers              = "Failed to load users."
	MsgLoadUserDetails        = "Failed to load user details."
	MsgLoadDashboard          = "Failed to load dashboard data."
	MsgLoadAuditLog           = "Failed to load activity log."
	MsgLoadAccess             = "Failed to load page access rules."
)

// SubmitErrorMessage 表单提交失败时的提示
// 优先使用服务端返回的 error 字段，其次使用错误本身的文本。
func SubmitErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *tccapi.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	return err.Error()
}
