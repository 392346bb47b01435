package service

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/authz"
	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/models"
)

// AccessService 经理页面权限管理
type AccessService struct {
	authz *authz.Service
	logs  *ActionLogService
}

// NewAccessService 创建页面权限服务
func NewAccessService(authzService *authz.Service, logs *ActionLogService) *AccessService {
	return &AccessService{authz: authzService, logs: logs}
}

// RolePolicies 单个角色的页面策略
type RolePolicies struct {
	Role     string         `json:"role"`
	Policies []authz.Policy `json:"policies"`
}

// AccessPage 页面权限列表
type AccessPage struct {
	Error string         `json:"error,omitempty"`
	Roles []RolePolicies `json:"roles"`
}

// PolicyForm 授予或撤销经理页面
type PolicyForm struct {
	Object string `form:"object" json:"object"`
	Action string `form:"action" json:"action"`
}

// Request 校验表单，返回规范化后的页面与动作
func (f PolicyForm) Request() (string, string, error) {
	object := strings.TrimSpace(f.Object)
	if !strings.HasPrefix(object, "/") {
		return "", "", formError("object", "Page path must start with /.")
	}
	action := authz.NormalizeAction(f.Action)
	switch action {
	case "GET", "POST", "*":
	default:
		return "", "", formError("action", "Action must be GET, POST or *.")
	}
	return authz.NormalizeObject(object), action, nil
}

// Page 列出所有角色及其页面策略
func (s *AccessService) Page(ctx context.Context, actor Actor) AccessPage {
	page := AccessPage{Roles: []RolePolicies{}}
	roles, err := s.authz.ListRoles()
	if err != nil {
		logLoadFailure(actor, "access", err)
		page.Error = MsgLoadAccess
		return page
	}
	for _, role := range roles {
		policies, err := s.authz.GetRolePolicies(role)
		if err != nil {
			logLoadFailure(actor, "access", err)
			return AccessPage{Error: MsgLoadAccess, Roles: []RolePolicies{}}
		}
		page.Roles = append(page.Roles, RolePolicies{
			Role:     strings.TrimPrefix(role, "role:"),
			Policies: policies,
		})
	}
	return page
}

// Grant 为经理角色授予页面
func (s *AccessService) Grant(ctx context.Context, actor Actor, form PolicyForm) error {
	object, action, err := form.Request()
	if err != nil {
		return err
	}
	if err := s.authz.GrantRolePolicy(constants.RoleManager, object, action); err != nil {
		return err
	}
	s.record(ctx, actor, constants.ActionPolicyGrant, object, action)
	return nil
}

// Revoke 撤销经理角色的页面，权限管理页本身不可撤销
func (s *AccessService) Revoke(ctx context.Context, actor Actor, form PolicyForm) error {
	object, action, err := form.Request()
	if err != nil {
		return err
	}
	if err := s.authz.RevokeRolePolicy(constants.RoleManager, object, action); err != nil {
		return err
	}
	s.record(ctx, actor, constants.ActionPolicyRevoke, object, action)
	return nil
}

func (s *AccessService) record(ctx context.Context, actor Actor, action, object, method string) {
	logger.WithRequest(actor.RequestID).Infow("access_policy_changed", "action", action, "object", object, "method", method)
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     action,
		TargetType: "page_policy",
		TargetID:   object,
		Detail:     models.JSON{"role": constants.RoleManager, "method": method},
	})
}
