package service

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/session"
	"github.com/tcc-console/internal/tccapi"
)

// AuthService 控制台登录注册服务
type AuthService struct {
	sessions *session.Manager
	logs     *ActionLogService
}

// NewAuthService 创建登录注册服务
func NewAuthService(sessions *session.Manager, logs *ActionLogService) *AuthService {
	return &AuthService{sessions: sessions, logs: logs}
}

// Register 注册账号，成功后不自动登录
func (s *AuthService) Register(ctx context.Context, requestID string, form RegisterForm) (*tccapi.User, error) {
	normalized, branchID, err := form.Normalize()
	if err != nil {
		return nil, err
	}
	user, err := s.sessions.Register(ctx, normalized.Username, normalized.Password, normalized.Role, branchID)
	if err != nil {
		return nil, err
	}
	actor := Actor{Username: normalized.Username, Role: normalized.Role, RequestID: requestID}
	targetID := ""
	if user != nil {
		actor.UserID = user.ID
		targetID = user.ID
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor:      actor,
		Action:     constants.ActionRegister,
		TargetType: "user",
		TargetID:   targetID,
		Detail:     models.JSON{"role": normalized.Role},
	})
	return user, nil
}

// Login 登录并返回新会话 ID
func (s *AuthService) Login(ctx context.Context, requestID string, form LoginForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}
	username := strings.TrimSpace(form.Username)
	id, _, err := s.sessions.Login(ctx, username, form.Password)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrNoAccessToken
	}
	current, err := s.sessions.Current(ctx, id)
	if err != nil {
		return "", err
	}
	if current == nil {
		return "", ErrNoAccessToken
	}
	s.logs.Record(ctx, ActionLogInput{
		Actor: Actor{
			UserID:    current.UserID(),
			Username:  username,
			Role:      current.Role(),
			RequestID: requestID,
		},
		Action: constants.ActionLogin,
	})
	return id, nil
}

// Logout 删除会话并记录
func (s *AuthService) Logout(ctx context.Context, actor Actor, sessionID string) error {
	if err := s.sessions.Logout(ctx, sessionID); err != nil {
		return err
	}
	if actor.UserID != "" {
		s.logs.Record(ctx, ActionLogInput{Actor: actor, Action: constants.ActionLogout})
	}
	return nil
}
