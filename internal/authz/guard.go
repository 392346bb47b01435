package authz

// Outcome 路由守卫判定结果
type Outcome int

const (
	// Render 正常渲染页面
	Render Outcome = iota
	// RedirectLogin 跳转登录页
	RedirectLogin
	// RedirectDashboard 跳转仪表盘
	RedirectDashboard
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDashboard:
		return "redirect_dashboard"
	default:
		return "unknown"
	}
}

// Decide 根据是否存在会话以及角色是否匹配给出导航结果
// 无会话优先于角色不匹配。
func Decide(hasSession, roleMatches bool) Outcome {
	if !hasSession {
		return RedirectLogin
	}
	if !roleMatches {
		return RedirectDashboard
	}
	return Render
}
