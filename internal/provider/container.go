package provider

import (
	"github.com/tcc-console/internal/authz"
	"github.com/tcc-console/internal/cache"
	"github.com/tcc-console/internal/config"
	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/queue"
	"github.com/tcc-console/internal/repository"
	"github.com/tcc-console/internal/service"
	"github.com/tcc-console/internal/session"
	"github.com/tcc-console/internal/tccapi"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	API         *tccapi.Client

	// Repositories
	SessionRepo   repository.SessionRepository
	ActionLogRepo repository.ActionLogRepository

	// Session
	SessionStore   session.Store
	SessionManager *session.Manager

	// Services
	AuthzService       *authz.Service
	ActionLogService   *service.ActionLogService
	AuthService        *service.AuthService
	DashboardService   *service.DashboardService
	BranchService      *service.BranchService
	ConsignmentService *service.ConsignmentService
	TruckService       *service.TruckService
	DispatchService    *service.DispatchService
	UserService        *service.UserService
	AccessService      *service.AccessService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		API:         tccapi.New(cfg.API.BaseURL, tccapi.WithTimeout(cfg.API.Timeout())),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化会话存储
	c.initSessions()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.SessionRepo = repository.NewSessionRepository(db)
	c.ActionLogRepo = repository.NewActionLogRepository(db)
}

func (c *Container) initSessions() {
	c.SessionStore = selectSessionStore(c.Config.Session.Store, cache.Enabled(), c.SessionRepo)
	c.SessionManager = session.NewManager(c.API, c.SessionStore, c.Config.Session.TTL())
}

// selectSessionStore 选择会话存储，Redis 不可用时回退到数据库
func selectSessionStore(driver string, redisEnabled bool, repo repository.SessionRepository) session.Store {
	if driver == constants.SessionStoreRedis {
		if redisEnabled {
			return session.NewRedisStore()
		}
		logger.Warnw("provider_session_store_fallback", "requested", driver, "using", constants.SessionStoreDatabase)
	}
	return session.NewDBStore(repo)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapPagePolicies(); err != nil {
		logger.Errorw("provider_bootstrap_page_policies_failed", "error", err)
		panic(err)
	}

	c.ActionLogService = service.NewActionLogService(c.ActionLogRepo, c.QueueClient)
	c.AuthService = service.NewAuthService(c.SessionManager, c.ActionLogService)
	c.DashboardService = service.NewDashboardService(c.API)
	c.BranchService = service.NewBranchService(c.API, c.ActionLogService)
	c.ConsignmentService = service.NewConsignmentService(c.API, c.ActionLogService)
	c.TruckService = service.NewTruckService(c.API, c.ActionLogService)
	c.DispatchService = service.NewDispatchService(c.API)
	c.UserService = service.NewUserService(c.API, c.ActionLogService)
	c.AccessService = service.NewAccessService(c.AuthzService, c.ActionLogService)
}
