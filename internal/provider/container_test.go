package provider

import (
	"testing"

	"github.com/tcc-console/internal/session"
)

func TestSelectSessionStore(t *testing.T) {
	if _, ok := selectSessionStore("redis", true, nil).(*session.RedisStore); !ok {
		t.Fatalf("expected redis store when redis is enabled")
	}
	if _, ok := selectSessionStore("redis", false, nil).(*session.DBStore); !ok {
		t.Fatalf("expected database fallback when redis is disabled")
	}
	if _, ok := selectSessionStore("database", true, nil).(*session.DBStore); !ok {
		t.Fatalf("expected database store")
	}
}
