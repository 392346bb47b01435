package router

import (
	"fmt"
	"strings"

	"github.com/tcc-console/internal/cache"
	"github.com/tcc-console/internal/config"
	"github.com/tcc-console/internal/constants"
	consolehandlers "github.com/tcc-console/internal/http/handlers/console"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) (*gin.Engine, error) {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates failed: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	h := consolehandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tcc"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Reject:        h.RejectLogin,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(SessionMiddleware(c.SessionManager, cfg.Session.CookieName))
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", h.Health)
	r.GET("/", h.Home)

	// 登录注册
	r.GET(constants.PathLogin, h.LoginPage)
	r.POST(constants.PathLogin, RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndField("username")), h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)

	// 登录后可见的页面
	pages := r.Group("")
	pages.Use(PageGuard(c.AuthzService, ""))
	{
		pages.GET(constants.PathDashboard, h.Dashboard)
		pages.GET("/dashboard/actions/:action", h.QuickAction)

		pages.GET("/consignments", h.ListConsignments)
		pages.POST("/consignments", h.CreateConsignment)
		pages.GET("/consignments/new", h.NewConsignment)
		pages.GET("/consignments/stats", h.ConsignmentStats)
		pages.GET("/consignments/:id", h.ShowConsignment)
		pages.GET("/consignments/:id/status", h.ConsignmentStatusForm)
		pages.POST("/consignments/:id/status", h.UpdateConsignmentStatus)

		pages.GET("/trucks", h.ListTrucks)
		pages.POST("/trucks", h.CreateTruck)
		pages.GET("/trucks/new", h.NewTruck)
		pages.GET("/trucks/:id", h.ShowTruck)
		pages.GET("/trucks/:id/status", h.TruckStatusForm)
		pages.POST("/trucks/:id/status", h.UpdateTruckStatus)

		pages.GET("/branches", h.ListBranches)
		pages.GET("/branches/:id", h.ShowBranch)

		pages.GET("/dispatches", h.ListDispatches)
		pages.GET("/dispatches/:id", h.ShowDispatch)
		pages.GET("/dispatches/:id/manifest", h.DispatchManifest)

		pages.GET("/invoices", h.ListInvoices)
		pages.GET("/invoices/:id", h.ShowInvoice)
	}

	// 经理专属页面
	manager := r.Group("")
	manager.Use(PageGuard(c.AuthzService, constants.RoleManager))
	{
		manager.GET("/branches/new", h.NewBranch)
		manager.POST("/branches", h.CreateBranch)
		manager.GET("/branches/:id/stats", h.BranchStats)

		manager.GET("/users", h.ListUsers)
		manager.GET("/users/:id", h.ShowUser)
		manager.POST("/users/:id", h.UpdateUser)
		manager.POST("/users/:id/delete", h.DeleteUser)

		manager.GET("/audit", h.ListActivity)

		manager.GET(constants.PathAccess, h.ShowAccess)
		manager.POST(constants.PathAccess+"/grant", h.GrantAccess)
		manager.POST(constants.PathAccess+"/revoke", h.RevokeAccess)
	}

	r.NoRoute(h.NotFound)

	return r, nil
}
