package cache

import (
	"context"
	"testing"
	"time"

	"github.com/tcc-console/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("redis should be disabled")
	}

	ctx := context.Background()
	if _, ok, err := GetString(ctx, "session:x"); ok || err != nil {
		t.Fatalf("disabled get should be a miss: ok=%v err=%v", ok, err)
	}
	if err := SetString(ctx, "session:x", "{}", time.Minute); err != nil {
		t.Fatalf("disabled set should be a no-op: %v", err)
	}
	if err := Del(ctx, "session:x"); err != nil {
		t.Fatalf("disabled del should be a no-op: %v", err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: true, Prefix: "  "}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if got := Key("session:abc"); got != "tcc:session:abc" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := Key(" "); got != "tcc" {
		t.Fatalf("unexpected empty key: %s", got)
	}
}
