package service

import (
	"strings"

	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/tccapi"
)

// Actor 发起请求的控制台用户
type Actor struct {
	UserID    string
	Username  string
	Role      string
	Token     string
	RequestID string
}

// IsManager 判断是否为经理角色
func (a Actor) IsManager() bool {
	return strings.EqualFold(a.Role, "MANAGER")
}

func scopedClient(api *tccapi.Client, actor Actor) *tccapi.Client {
	return api.As(actor.Token)
}

// logLoadFailure 记录页面加载失败，页面本身只展示固定文案
func logLoadFailure(actor Actor, page string, err error) {
	logger.WithRequest(actor.RequestID).Warnw("page_load_failed", "page", page, "user_id", actor.UserID, "error", err)
}
