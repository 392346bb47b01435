package repository

import (
	"context"
	"testing"

	"github.com/tcc-console/internal/models"
)

func TestActionLogRepositoryListFilters(t *testing.T) {
	repo := NewActionLogRepository(setupRepositoryTestDB(t, "action_log_repo"))
	ctx := context.Background()

	fixtures := []models.ActionLog{
		{UserID: "u1", Username: "alice", Action: "login"},
		{UserID: "u1", Username: "alice", Action: "truck_create", TargetType: "truck", TargetID: "t1"},
		{UserID: "u2", Username: "bob", Action: "truck_status_update", TargetType: "truck", TargetID: "t1",
			DetailJSON: models.JSON{"status": "IDLE"}},
	}
	for i := range fixtures {
		if err := repo.Create(ctx, &fixtures[i]); err != nil {
			t.Fatalf("create action log failed: %v", err)
		}
	}

	logs, total, err := repo.List(ctx, ActionLogListFilter{TargetType: "truck"})
	if err != nil {
		t.Fatalf("list action logs failed: %v", err)
	}
	if total != 2 || len(logs) != 2 {
		t.Fatalf("expected 2 truck logs, got total=%d len=%d", total, len(logs))
	}
	if logs[0].Action != "truck_status_update" {
		t.Fatalf("expected newest first, got %s", logs[0].Action)
	}
	if logs[0].DetailJSON["status"] != "IDLE" {
		t.Fatalf("unexpected detail: %v", logs[0].DetailJSON)
	}

	logs, total, err = repo.List(ctx, ActionLogListFilter{UserID: "u1", Page: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("list paged action logs failed: %v", err)
	}
	if total != 2 || len(logs) != 1 || logs[0].Action != "login" {
		t.Fatalf("unexpected paged result: total=%d logs=%+v", total, logs)
	}

	logs, total, err = repo.List(ctx, ActionLogListFilter{Keyword: "idle"})
	if err != nil {
		t.Fatalf("keyword search failed: %v", err)
	}
	if total != 1 || len(logs) != 1 || logs[0].Username != "bob" {
		t.Fatalf("expected detail keyword match, got total=%d logs=%+v", total, logs)
	}

	_, total, err = repo.List(ctx, ActionLogListFilter{Keyword: "ALI"})
	if err != nil {
		t.Fatalf("keyword search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected username keyword to match 2 logs, got %d", total)
	}
}
