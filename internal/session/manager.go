package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tcc-console/internal/authz"
	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/tccapi"

	"github.com/google/uuid"
)

// ErrSessionStoreUnavailable 会话存储不可用
var ErrSessionStoreUnavailable = errors.New("session store unavailable")

// AuthAPI 会话层依赖的远端认证接口
type AuthAPI interface {
	Register(ctx context.Context, req tccapi.RegisterRequest) (*tccapi.User, error)
	Login(ctx context.Context, username, password string) (*tccapi.LoginResult, error)
}

// Session 当前请求的会话上下文
type Session struct {
	ID          string
	Payload     json.RawMessage
	AccessToken string
	Claims      *authz.Claims
}

// Role 返回令牌中的角色，无会话时为空
func (s *Session) Role() string {
	if s == nil || s.Claims == nil {
		return ""
	}
	return s.Claims.Role
}

// UserID 返回令牌中的用户 ID
func (s *Session) UserID() string {
	if s == nil || s.Claims == nil {
		return ""
	}
	return s.Claims.UserID
}

// Token 返回访问令牌
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.AccessToken
}

// Manager 会话管理器
type Manager struct {
	api   AuthAPI
	store Store
	ttl   time.Duration
	now   func() time.Time
	newID func() string
}

// NewManager 创建会话管理器
func NewManager(api AuthAPI, store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		api:   api,
		store: store,
		ttl:   ttl,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Register 注册账号，不创建会话
func (m *Manager) Register(ctx context.Context, username, password, role string, branchID *string) (*tccapi.User, error) {
	return m.api.Register(ctx, tccapi.RegisterRequest{
		Username: username,
		Password: password,
		Role:     tccapi.Role(strings.ToUpper(strings.TrimSpace(role))),
		BranchID: branchID,
	})
}

// Login 登录并在响应带有 access_token 时原样持久化响应体
// 返回的会话 ID 为空表示未创建会话。远端错误原样返回。
func (m *Manager) Login(ctx context.Context, username, password string) (string, json.RawMessage, error) {
	result, err := m.api.Login(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if result.AccessToken == "" {
		return "", result.Raw, nil
	}
	if m.store == nil {
		return "", result.Raw, ErrSessionStoreUnavailable
	}

	id := m.newID()
	record := Record{
		ID:        id,
		Payload:   append([]byte(nil), result.Raw...),
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.store.Save(ctx, record); err != nil {
		return "", result.Raw, fmt.Errorf("save session failed: %w", err)
	}
	return id, result.Raw, nil
}

// Logout 删除会话，不通知远端
func (m *Manager) Logout(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" || m.store == nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// Current 返回当前会话，不存在时返回 nil
// 持久化内容损坏或令牌无法解码时按未登录处理并删除记录。
func (m *Manager) Current(ctx context.Context, id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" || m.store == nil {
		return nil, nil
	}
	record, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	token, err := accessToken(record.Payload)
	if err != nil {
		logger.Warnw("session_payload_malformed", "session_id", id, "error", err)
		m.discard(ctx, id)
		return nil, nil
	}
	claims, err := authz.DecodeClaimsAt(token, m.now())
	if err != nil {
		logger.Infow("session_token_rejected", "session_id", id, "error", err)
		m.discard(ctx, id)
		return nil, nil
	}

	return &Session{
		ID:          id,
		Payload:     json.RawMessage(record.Payload),
		AccessToken: token,
		Claims:      claims,
	}, nil
}

func (m *Manager) discard(ctx context.Context, id string) {
	if err := m.store.Delete(ctx, id); err != nil {
		logger.Warnw("session_discard_failed", "session_id", id, "error", err)
	}
}

func accessToken(payload []byte) (string, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return "", errors.New("empty payload")
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", err
	}
	raw, ok := body["access_token"]
	if !ok {
		return "", errors.New("access_token missing")
	}
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", fmt.Errorf("access_token is not a string: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("access_token empty")
	}
	return token, nil
}
