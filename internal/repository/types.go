package repository

import "time"

// ActionLogListFilter 查询操作日志列表的过滤条件
type ActionLogListFilter struct {
	Page        int
	PageSize    int
	UserID      string
	Action      string
	TargetType  string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
