package models

import "time"

// ActionLog 控制台操作日志
// 说明：记录登录、登出以及每一次成功提交到远端 API 的变更操作。
type ActionLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     string    `gorm:"type:varchar(64);index;not null;default:''" json:"user_id"`
	Username   string    `gorm:"type:varchar(100);index;not null;default:''" json:"username"`
	Role       string    `gorm:"type:varchar(20);index;not null;default:''" json:"role"`
	Action     string    `gorm:"type:varchar(64);index;not null" json:"action"`
	TargetType string    `gorm:"type:varchar(32);index;not null;default:''" json:"target_type"`
	TargetID   string    `gorm:"type:varchar(64);index;not null;default:''" json:"target_id"`
	RequestID  string    `gorm:"type:varchar(64);index;not null;default:''" json:"request_id"`
	DetailJSON JSON      `gorm:"type:json" json:"detail"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (ActionLog) TableName() string {
	return "action_logs"
}
