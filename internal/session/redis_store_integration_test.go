//go:build integration
// +build integration

package session

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tcc-console/internal/cache"
	"github.com/tcc-console/internal/config"
)

// setupRedisIntegration 初始化 Redis 集成测试连接。
func setupRedisIntegration(t *testing.T) {
	t.Helper()
	host := strings.TrimSpace(os.Getenv("TEST_REDIS_HOST"))
	if host == "" {
		t.Skip("skip redis integration test: TEST_REDIS_HOST is empty")
	}
	port, _ := strconv.Atoi(os.Getenv("TEST_REDIS_PORT"))
	if err := cache.InitRedis(&config.RedisConfig{Enabled: true, Host: host, Port: port, Prefix: "tcc_test"}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
}

func TestRedisStoreLifecycle(t *testing.T) {
	setupRedisIntegration(t)
	store := NewRedisStore()
	ctx := context.Background()

	record := Record{ID: "redis-it", Payload: []byte(`{"access_token":"x"}`), ExpiresAt: time.Now().Add(time.Minute)}
	if err := store.Save(ctx, record); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load(ctx, "redis-it")
	if err != nil || got == nil || string(got.Payload) != `{"access_token":"x"}` {
		t.Fatalf("unexpected load: %+v err=%v", got, err)
	}
	if err := store.Delete(ctx, "redis-it"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err = store.Load(ctx, "redis-it")
	if err != nil || got != nil {
		t.Fatalf("expected miss after delete: %+v err=%v", got, err)
	}
}
