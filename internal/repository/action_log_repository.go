package repository

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/models"

	"gorm.io/gorm"
)

// ActionLogRepository 操作日志数据访问接口
type ActionLogRepository interface {
	Create(ctx context.Context, log *models.ActionLog) error
	List(ctx context.Context, filter ActionLogListFilter) ([]models.ActionLog, int64, error)
}

// GormActionLogRepository GORM 实现
type GormActionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository 创建操作日志仓库
func NewActionLogRepository(db *gorm.DB) *GormActionLogRepository {
	return &GormActionLogRepository{db: db}
}

// Create 创建操作日志
func (r *GormActionLogRepository) Create(ctx context.Context, log *models.ActionLog) error {
	if log == nil {
		return nil
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// List 按条件查询操作日志，按 ID 倒序
func (r *GormActionLogRepository) List(ctx context.Context, filter ActionLogListFilter) ([]models.ActionLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActionLog{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildKeywordCondition(r.db, []string{"username", "target_id"}, "detail_json", actionDetailSearchKeys)
		query = query.Where(condition, repeatLikeArgs("%"+keyword+"%", argCount)...)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	logs := make([]models.ActionLog, 0)
	if err := query.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
