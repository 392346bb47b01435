package service

import (
	"strings"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/tccapi"
)

// FilterConsignmentsByBranch 只保留始发网点为 branchID 的托运单，未绑定网点时原样返回
func FilterConsignmentsByBranch(items []tccapi.Consignment, branchID *string) []tccapi.Consignment {
	branch := branchValue(branchID)
	if branch == "" {
		return items
	}
	filtered := make([]tccapi.Consignment, 0, len(items))
	for _, item := range items {
		if item.OriginBranchID == branch {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterTrucksByBranch 只保留当前所在网点为 branchID 的车辆，未绑定网点时原样返回
func FilterTrucksByBranch(items []tccapi.Truck, branchID *string) []tccapi.Truck {
	branch := branchValue(branchID)
	if branch == "" {
		return items
	}
	filtered := make([]tccapi.Truck, 0, len(items))
	for _, item := range items {
		if item.CurrentBranchID != nil && *item.CurrentBranchID == branch {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterConsignmentsByStatus 按状态筛选托运单，ALL 或空值不做筛选
func FilterConsignmentsByStatus(items []tccapi.Consignment, status string) []tccapi.Consignment {
	want, ok := statusFilter(status)
	if !ok {
		return items
	}
	filtered := make([]tccapi.Consignment, 0, len(items))
	for _, item := range items {
		if string(item.Status) == want {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterTrucksByStatus 按状态筛选车辆，ALL 或空值不做筛选
func FilterTrucksByStatus(items []tccapi.Truck, status string) []tccapi.Truck {
	want, ok := statusFilter(status)
	if !ok {
		return items
	}
	filtered := make([]tccapi.Truck, 0, len(items))
	for _, item := range items {
		if string(item.Status) == want {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ConsignmentsForDispatch 找出挂在指定发车记录下的托运单
func ConsignmentsForDispatch(items []tccapi.Consignment, dispatchID string) []tccapi.Consignment {
	dispatchID = strings.TrimSpace(dispatchID)
	filtered := make([]tccapi.Consignment, 0)
	if dispatchID == "" {
		return filtered
	}
	for _, item := range items {
		if item.DispatchID != nil && *item.DispatchID == dispatchID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func statusFilter(status string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(status))
	if normalized == "" || normalized == constants.StatusFilterAll {
		return "", false
	}
	return normalized, true
}

func branchValue(branchID *string) string {
	if branchID == nil {
		return ""
	}
	return strings.TrimSpace(*branchID)
}
