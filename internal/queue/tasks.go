package queue

import (
	"encoding/json"
	"time"

	"github.com/tcc-console/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskActionLog 操作日志落库任务
	TaskActionLog = constants.TaskActionLog
)

// ActionLogPayload 操作日志任务载荷
type ActionLogPayload struct {
	UserID     string                 `json:"user_id"`
	Username   string                 `json:"username"`
	Role       string                 `json:"role"`
	Action     string                 `json:"action"`
	TargetType string                 `json:"target_type"`
	TargetID   string                 `json:"target_id"`
	RequestID  string                 `json:"request_id"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NewActionLogTask 创建操作日志任务
func NewActionLogTask(payload ActionLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskActionLog, body), nil
}

// ParseActionLogPayload 解析操作日志任务载荷
func ParseActionLogPayload(task *asynq.Task) (ActionLogPayload, error) {
	var payload ActionLogPayload
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
