package session

import (
	"context"
	"testing"
	"time"
)

func TestRedisStoreWithoutRedisIsEmpty(t *testing.T) {
	store := NewRedisStore()
	ctx := context.Background()

	if err := store.Save(ctx, Record{ID: "x", Payload: []byte("{}"), ExpiresAt: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("save without redis should be a no-op: %v", err)
	}
	got, err := store.Load(ctx, "x")
	if err != nil || got != nil {
		t.Fatalf("expected miss without redis: %+v err=%v", got, err)
	}
	if removed, err := store.PurgeExpired(ctx, time.Now()); err != nil || removed != 0 {
		t.Fatalf("unexpected purge result: %d %v", removed, err)
	}
}
