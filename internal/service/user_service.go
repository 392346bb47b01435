package service

import (
	"context"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/tccapi"
)

// UserService 用户管理页面服务（经理）
type UserService struct {
	api  *tccapi.Client
	logs *ActionLogService
}

// NewUserService 创建用户管理页面服务
func NewUserService(api *tccapi.Client, logs *ActionLogService) *UserService {
	return &UserService{api: api, logs: logs}
}

// UserListPage 用户列表页
type UserListPage struct {
	Error string        `json:"error,omitempty"`
	Users []tccapi.User `json:"users"`
}

// UserDetailPage 用户详情页
type UserDetailPage struct {
	Error string       `json:"error,omitempty"`
	User  *tccapi.User `json:"user,omitempty"`
}

// List 加载用户列表
func (s *UserService) List(ctx context.Context, actor Actor) UserListPage {
	users, err := scopedClient(s.api, actor).ListUsers(ctx)
	if err != nil {
		logLoadFailure(actor, "users", err)
		return UserListPage{Error: MsgLoadUsers, Users: []tccapi.User{}}
	}
	return UserListPage{Users: users}
}

// Detail 加载用户详情
func (s *UserService) Detail(ctx context.Context, actor Actor, id string) UserDetailPage {
	user, err := scopedClient(s.api, actor).GetUser(ctx, id)
	if err != nil {
		logLoadFailure(actor, "user_detail", err)
		return UserDetailPage{Error: MsgLoadUserDetails}
	}
	return UserDetailPage{User: user}
}

// Update 局部更新用户
func (s *UserService) Update(ctx context.Context, actor Actor, id string, form UserUpdateForm) (*tccapi.User, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	user, err := scopedClient(s.api, actor).UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	detail := models.JSON{}
	if req.Username != nil {
		detail["username"] = *req.Username
	}
	if req.Role != nil {
		detail["role"] = string(*req.Role)
	}
	if req.BranchID != nil {
		detail["branch_id"] = *req.BranchID
	} else if req.ClearBranch {
		detail["branch_id"] = nil
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionUserUpdate,
		TargetType: "user",
		TargetID:   id,
		Detail:     detail,
	})
	return user, nil
}

// Delete 删除用户
func (s *UserService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := scopedClient(s.api, actor).DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionUserDelete,
		TargetType: "user",
		TargetID:   id,
	})
	return nil
}
