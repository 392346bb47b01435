package worker

import (
	"context"
	"testing"
	"time"

	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/repository"
	"github.com/tcc-console/internal/session"
)

func TestSessionPurgerRunOnce(t *testing.T) {
	db := setupWorkerTestDB(t)
	store := session.NewDBStore(repository.NewSessionRepository(db))
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	records := []models.Session{
		{ID: "old", Payload: `{"access_token":"a"}`, ExpiresAt: now.Add(-time.Minute)},
		{ID: "live", Payload: `{"access_token":"b"}`, ExpiresAt: now.Add(time.Hour)},
	}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			t.Fatalf("seed session failed: %v", err)
		}
	}

	purger, err := NewSessionPurger(store, "")
	if err != nil {
		t.Fatalf("new purger failed: %v", err)
	}
	purger.now = func() time.Time { return now }

	if removed := purger.RunOnce(context.Background()); removed != 1 {
		t.Fatalf("expected one purged session, got %d", removed)
	}
	var remaining []models.Session
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].ID != "live" {
		t.Fatalf("unexpected remaining sessions: %+v", remaining)
	}
}

func TestNewSessionPurgerValidatesSpec(t *testing.T) {
	db := setupWorkerTestDB(t)
	store := session.NewDBStore(repository.NewSessionRepository(db))
	if _, err := NewSessionPurger(store, "every now and then"); err == nil {
		t.Fatalf("expected invalid spec error")
	}
	if _, err := NewSessionPurger(nil, "@every 1m"); err == nil {
		t.Fatalf("expected nil store error")
	}
	purger, err := NewSessionPurger(store, "*/5 * * * *")
	if err != nil {
		t.Fatalf("standard spec should be accepted: %v", err)
	}
	if purger.Name() != "session-purge" {
		t.Fatalf("unexpected name: %s", purger.Name())
	}
}

func TestSessionPurgerStopsWithContext(t *testing.T) {
	db := setupWorkerTestDB(t)
	purger, err := NewSessionPurger(session.NewDBStore(repository.NewSessionRepository(db)), "@every 1h")
	if err != nil {
		t.Fatalf("new purger failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- purger.Start(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("purger did not stop")
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := purger.Stop(stopCtx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}
