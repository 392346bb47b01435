package service

import (
	"context"
	"testing"
	"time"

	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/queue"
	"github.com/tcc-console/internal/repository"
)

func TestActionLogRecordPersistsWhenQueueDisabled(t *testing.T) {
	svc, db := setupActionLogServiceTest(t)
	svc.Record(context.Background(), ActionLogInput{
		Actor:      Actor{UserID: "7", Username: " alice ", Role: "staff", RequestID: "req-9"},
		Action:     "truck_create",
		TargetType: "truck",
		TargetID:   "t1",
		Detail:     models.JSON{"truck_number": "KA-01"},
	})

	var logs []models.ActionLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("query logs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log, got %d", len(logs))
	}
	got := logs[0]
	if got.Username != "alice" || got.Role != "STAFF" || got.RequestID != "req-9" || got.TargetID != "t1" {
		t.Fatalf("unexpected log: %+v", got)
	}
	if got.DetailJSON["truck_number"] != "KA-01" {
		t.Fatalf("unexpected detail: %+v", got.DetailJSON)
	}
}

func TestActionLogRecordIgnoresBlankAction(t *testing.T) {
	svc, db := setupActionLogServiceTest(t)
	svc.Record(context.Background(), ActionLogInput{Actor: testActor, Action: "  "})
	var count int64
	db.Model(&models.ActionLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("blank action should not be logged, got %d", count)
	}

	var nilService *ActionLogService
	nilService.Record(context.Background(), ActionLogInput{Actor: testActor, Action: "login"})
}

func TestActionLogPersistFromQueuePayload(t *testing.T) {
	svc, db := setupActionLogServiceTest(t)
	occurred := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	err := svc.Persist(context.Background(), queue.ActionLogPayload{
		UserID:     "1",
		Action:     "user_delete",
		TargetType: "user",
		TargetID:   "u2",
		OccurredAt: occurred,
	})
	if err != nil {
		t.Fatalf("persist failed: %v", err)
	}
	var log models.ActionLog
	if err := db.First(&log).Error; err != nil {
		t.Fatalf("load log failed: %v", err)
	}
	if !log.CreatedAt.Equal(occurred) {
		t.Fatalf("expected occurred_at to be kept, got %s", log.CreatedAt)
	}
}

func TestActionLogList(t *testing.T) {
	svc, _ := setupActionLogServiceTest(t)
	for _, action := range []string{"login", "truck_create", "login"} {
		svc.Record(context.Background(), ActionLogInput{Actor: testActor, Action: action})
	}

	page := svc.List(context.Background(), repository.ActionLogListFilter{Action: "login"})
	if page.Error != "" || page.Total != 2 || len(page.Logs) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Page != 1 || page.PageSize != 50 {
		t.Fatalf("unexpected paging defaults: %+v", page)
	}
	if page.Logs[0].ID < page.Logs[1].ID {
		t.Fatalf("logs should be newest first: %+v", page.Logs)
	}
}
