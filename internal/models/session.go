package models

import "time"

// Session 控制台登录会话
// 说明：Payload 原样保存登录接口的响应体（含 access_token），不做任何改写。
type Session struct {
	ID        string    `gorm:"primarykey;type:varchar(64)" json:"id"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Session) TableName() string {
	return "console_sessions"
}

// Expired 判断会话是否已过期
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
