package worker

import (
	"context"
	"strings"

	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/provider"
	"github.com/tcc-console/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskActionLog, c.handleActionLog)
}

func (c *Consumer) handleActionLog(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_action_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseActionLogPayload(task)
	if err != nil {
		logger.Warnw("worker_action_log_unmarshal_failed", "error", err)
		// 载荷无法解析时重试没有意义
		return asynq.SkipRetry
	}
	if strings.TrimSpace(payload.Action) == "" {
		logger.Debugw("worker_action_log_skip_invalid_payload", "request_id", payload.RequestID)
		return nil
	}
	if err := c.ActionLogService.Persist(ctx, payload); err != nil {
		logger.Warnw("worker_action_log_persist_failed",
			"action", payload.Action,
			"request_id", payload.RequestID,
			"error", err,
		)
		return err
	}
	return nil
}
