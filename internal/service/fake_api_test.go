package service

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/queue"
	"github.com/tcc-console/internal/repository"
	"github.com/tcc-console/internal/tccapi"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeRoute struct {
	status int
	body   string
}

type fakeRequest struct {
	method        string
	path          string
	query         string
	authorization string
	body          string
}

// fakeTCCAPI 以 httptest 模拟远端 TCC 接口，按 "METHOD /path" 匹配固定响应
type fakeTCCAPI struct {
	server *httptest.Server
	mu     sync.Mutex
	routes map[string]fakeRoute
	calls  []fakeRequest
}

func newFakeTCCAPI(t *testing.T, routes map[string]fakeRoute) *fakeTCCAPI {
	t.Helper()
	f := &fakeTCCAPI{routes: routes}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api/v1")
		f.mu.Lock()
		f.calls = append(f.calls, fakeRequest{
			method:        r.Method,
			path:          strings.TrimPrefix(r.URL.Path, "/api/v1"),
			query:         r.URL.RawQuery,
			authorization: r.Header.Get("Authorization"),
			body:          string(body),
		})
		route, ok := f.routes[key]
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"not found"}`)
			return
		}
		status := route.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, route.body)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeTCCAPI) client() *tccapi.Client {
	return tccapi.New(f.server.URL + "/api/v1")
}

func (f *fakeTCCAPI) requests() []fakeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeRequest(nil), f.calls...)
}

func (f *fakeTCCAPI) lastRequest(t *testing.T, method, path string) fakeRequest {
	t.Helper()
	calls := f.requests()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].method == method && calls[i].path == path {
			return calls[i]
		}
	}
	t.Fatalf("request %s %s not found in %+v", method, path, calls)
	return fakeRequest{}
}

// unreachableClient 指向已关闭的服务，用于模拟传输层失败
func unreachableClient(t *testing.T) *tccapi.Client {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return tccapi.New(url, tccapi.WithTimeout(2*time.Second))
}

func setupActionLogServiceTest(t *testing.T) (*ActionLogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ActionLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewActionLogService(repository.NewActionLogRepository(db), queueClient), db
}

func countActionLogs(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.ActionLog{}).Where("action = ?", action).Count(&count).Error; err != nil {
		t.Fatalf("count action logs failed: %v", err)
	}
	return count
}

var testActor = Actor{UserID: "7", Username: "alice", Role: "STAFF", Token: "token-abc", RequestID: "req-1"}
