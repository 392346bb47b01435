package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/provider"
	"github.com/tcc-console/internal/queue"
	"github.com/tcc-console/internal/repository"
	"github.com/tcc-console/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupWorkerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ActionLog{}, &models.Session{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newTestConsumer(t *testing.T, db *gorm.DB) *Consumer {
	t.Helper()
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewConsumer(&provider.Container{
		ActionLogService: service.NewActionLogService(repository.NewActionLogRepository(db), queueClient),
	})
}

func TestHandleActionLogPersists(t *testing.T) {
	db := setupWorkerTestDB(t)
	consumer := newTestConsumer(t, db)

	task, err := queue.NewActionLogTask(queue.ActionLogPayload{
		UserID:     "3",
		Username:   "carol",
		Role:       "MANAGER",
		Action:     "user_delete",
		TargetType: "user",
		TargetID:   "u8",
		RequestID:  "req-5",
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleActionLog(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var logs []models.ActionLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("query logs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].TargetID != "u8" || logs[0].RequestID != "req-5" {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}

func TestHandleActionLogSkipsBadPayload(t *testing.T) {
	db := setupWorkerTestDB(t)
	consumer := newTestConsumer(t, db)

	err := consumer.handleActionLog(context.Background(), asynq.NewTask(queue.TaskActionLog, []byte("{not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}

	empty, _ := queue.NewActionLogTask(queue.ActionLogPayload{Action: " "})
	if err := consumer.handleActionLog(context.Background(), empty); err != nil {
		t.Fatalf("blank action should be skipped, got %v", err)
	}
	var count int64
	db.Model(&models.ActionLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("nothing should be persisted, got %d", count)
	}
}

func TestNilConsumerIgnoresTask(t *testing.T) {
	var consumer *Consumer
	if err := consumer.handleActionLog(context.Background(), nil); err != nil {
		t.Fatalf("nil consumer should ignore task, got %v", err)
	}
}
