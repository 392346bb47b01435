package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/queue"
	"github.com/tcc-console/internal/repository"
)

// ActionLogInput 操作日志记录输入
type ActionLogInput struct {
	Actor      Actor
	Action     string
	TargetType string
	TargetID   string
	Detail     models.JSON
}

// ActionLogService 操作日志服务
// 说明：启用队列时异步落库，未启用或入队失败时同步写入。
type ActionLogService struct {
	repo        repository.ActionLogRepository
	queueClient *queue.Client
	now         func() time.Time
}

// NewActionLogService 创建操作日志服务
func NewActionLogService(repo repository.ActionLogRepository, queueClient *queue.Client) *ActionLogService {
	return &ActionLogService{repo: repo, queueClient: queueClient, now: time.Now}
}

// Record 记录一次操作，失败只记日志，不影响页面流程
func (s *ActionLogService) Record(ctx context.Context, input ActionLogInput) {
	if s == nil || strings.TrimSpace(input.Action) == "" {
		return
	}
	payload := queue.ActionLogPayload{
		UserID:     strings.TrimSpace(input.Actor.UserID),
		Username:   strings.TrimSpace(input.Actor.Username),
		Role:       strings.ToUpper(strings.TrimSpace(input.Actor.Role)),
		Action:     strings.TrimSpace(input.Action),
		TargetType: strings.TrimSpace(input.TargetType),
		TargetID:   strings.TrimSpace(input.TargetID),
		RequestID:  strings.TrimSpace(input.Actor.RequestID),
		Detail:     input.Detail,
		OccurredAt: s.now(),
	}

	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueActionLog(payload)
		if err == nil {
			return
		}
		logger.Warnw("action_log_enqueue_failed", "action", payload.Action, "error", err)
	}
	if err := s.Persist(ctx, payload); err != nil {
		logger.Warnw("action_log_persist_failed", "action", payload.Action, "error", err)
	}
}

// Persist 将操作日志写入数据库，供同步路径与队列消费者共用
func (s *ActionLogService) Persist(ctx context.Context, payload queue.ActionLogPayload) error {
	if s == nil || s.repo == nil {
		return errors.New("action log repository unavailable")
	}
	createdAt := payload.OccurredAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	return s.repo.Create(ctx, &models.ActionLog{
		UserID:     payload.UserID,
		Username:   payload.Username,
		Role:       payload.Role,
		Action:     payload.Action,
		TargetType: payload.TargetType,
		TargetID:   payload.TargetID,
		RequestID:  payload.RequestID,
		DetailJSON: models.JSON(payload.Detail),
		CreatedAt:  createdAt,
	})
}

// ActivityPage 操作日志页面
type ActivityPage struct {
	Error    string             `json:"error,omitempty"`
	Logs     []models.ActionLog `json:"logs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// List 查询操作日志
func (s *ActionLogService) List(ctx context.Context, filter repository.ActionLogListFilter) ActivityPage {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 200 {
		filter.PageSize = 50
	}
	page := ActivityPage{Logs: []models.ActionLog{}, Page: filter.Page, PageSize: filter.PageSize}
	if s == nil || s.repo == nil {
		return page
	}
	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.Warnw("page_load_failed", "page", "audit", "error", err)
		page.Error = MsgLoadAuditLog
		return page
	}
	page.Logs = logs
	page.Total = total
	return page
}
