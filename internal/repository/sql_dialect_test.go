package repository

import (
	"strings"
	"testing"
)

func TestJSONTextExprByDialectSQLite(t *testing.T) {
	got := jsonTextExprByDialect("sqlite", "detail_json", "truck_number")
	want := "json_extract(detail_json, '$.\"truck_number\"')"
	if got != want {
		t.Fatalf("sqlite json expr mismatch, want %s got %s", want, got)
	}
}

func TestJSONTextExprByDialectPostgres(t *testing.T) {
	got := jsonTextExprByDialect("postgres", "detail_json", "truck_number")
	want := "(detail_json::jsonb ->> 'truck_number')"
	if got != want {
		t.Fatalf("postgres json expr mismatch, want %s got %s", want, got)
	}
}

func TestBuildKeywordCondition(t *testing.T) {
	condition, argCount := buildKeywordCondition(nil, []string{"username", "target_id"}, "detail_json", []string{"name", "status"})
	if argCount != 4 {
		t.Fatalf("arg count want 4 got %d", argCount)
	}
	if !strings.Contains(condition, "username LIKE ?") {
		t.Fatalf("condition should contain username LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "json_extract(detail_json, '$.\"status\"') LIKE ?") {
		t.Fatalf("condition should contain detail status LIKE, got %s", condition)
	}
}

func TestBuildKeywordConditionPostgresUsesILike(t *testing.T) {
	condition, argCount := buildKeywordConditionByDialect("postgres", []string{"username"}, "", nil)
	if argCount != 1 || condition != "username ILIKE ?" {
		t.Fatalf("unexpected postgres condition: %s (%d)", condition, argCount)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
