package authz

import (
	"fmt"

	"github.com/tcc-console/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 控制台预置页面矩阵
// 只有声明了角色要求的页面才会查询策略表，登录即可访问的页面不需要预置。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleManager,
			Policies: []Policy{
				{Object: "/branches", Action: "POST"},
				{Object: "/branches/new", Action: "GET"},
				{Object: "/branches/:id/stats", Action: "GET"},
				{Object: "/users", Action: "GET"},
				{Object: "/users/:id", Action: "GET"},
				{Object: "/users/:id", Action: "POST"},
				{Object: "/users/:id/delete", Action: "POST"},
				{Object: "/audit", Action: "GET"},
				{Object: constants.PathAccess, Action: "GET"},
				{Object: constants.PathAccess + "/grant", Action: "POST"},
				{Object: constants.PathAccess + "/revoke", Action: "POST"},
			},
		},
	}
}

// BootstrapPagePolicies 初始化预置角色与页面策略，重复执行不会产生重复规则
func (s *Service) BootstrapPagePolicies() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
