package console

import "github.com/tcc-console/internal/provider"

// Handler 控制台页面处理器入口
// 说明：同一处理器同时服务 HTML 页面与 Accept: application/json 的调用方。
type Handler struct {
	*provider.Container
}

// New 创建控制台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
