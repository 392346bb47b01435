package console

import (
	"net/http"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"

	"github.com/gin-gonic/gin"
)

// Home 根路径按登录状态跳转
func (h *Handler) Home(c *gin.Context) {
	if shared.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, constants.PathDashboard)
		return
	}
	c.Redirect(http.StatusFound, constants.PathLogin)
}

// LoginPage 登录页
func (h *Handler) LoginPage(c *gin.Context) {
	if shared.CurrentSession(c) != nil {
		redirect(c, http.StatusFound, constants.PathDashboard, nil)
		return
	}
	render(c, "login.html", loginData(service.LoginForm{}), "")
}

// Login 提交登录
func (h *Handler) Login(c *gin.Context) {
	var form service.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "login.html", loginData(form), bindError(c, err))
		return
	}
	id, err := h.AuthService.Login(c.Request.Context(), shared.GetRequestID(c), form)
	if err != nil {
		form.Password = ""
		renderForm(c, "login.html", loginData(form), err)
		return
	}
	h.setSessionCookie(c, id)
	redirect(c, http.StatusSeeOther, constants.PathDashboard, nil)
}

// RejectLogin 登录限流时的提示
func (h *Handler) RejectLogin(c *gin.Context, code int, msg string) {
	if shared.WantsJSON(c) {
		response.Error(c, code, msg)
		return
	}
	data := loginData(service.LoginForm{Username: c.PostForm("username")})
	data.FormError = msg
	c.HTML(http.StatusTooManyRequests, "login.html", data)
}

// RegisterPage 注册页
func (h *Handler) RegisterPage(c *gin.Context) {
	render(c, "register.html", h.registerData(c, service.RegisterForm{Role: constants.RoleStaff}), "")
}

// Register 提交注册，成功后跳转登录页
func (h *Handler) Register(c *gin.Context) {
	var form service.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "register.html", h.registerData(c, form), bindError(c, err))
		return
	}
	user, err := h.AuthService.Register(c.Request.Context(), shared.GetRequestID(c), form)
	if err != nil {
		form.Password = ""
		renderForm(c, "register.html", h.registerData(c, form), err)
		return
	}
	redirect(c, http.StatusSeeOther, constants.PathLogin, user)
}

// Logout 退出登录，仅清理本地会话
func (h *Handler) Logout(c *gin.Context) {
	if sess := shared.CurrentSession(c); sess != nil {
		if err := h.AuthService.Logout(c.Request.Context(), actorFrom(c), sess.ID); err != nil {
			shared.RequestLog(c).Warnw("console_logout_failed", "error", err)
		}
	}
	h.clearSessionCookie(c)
	redirect(c, http.StatusSeeOther, constants.PathLogin, nil)
}

func loginData(form service.LoginForm) views.Data {
	return views.Data{Title: "Login", Form: form}
}

// registerData 注册页无需登录即可加载网点选项
func (h *Handler) registerData(c *gin.Context, form service.RegisterForm) views.Data {
	branches, branchErr := h.BranchService.Options(c.Request.Context(), actorFrom(c))
	return views.Data{
		Title:       "Register",
		Form:        form,
		Branches:    branches,
		BranchError: branchErr,
		Choices:     constants.Roles(),
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, id string) {
	cfg := h.Config.Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, int(cfg.TTL().Seconds()), "/", "", cfg.SecureCookie, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	cfg := h.Config.Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.SecureCookie, true)
}
