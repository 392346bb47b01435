package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/repository"
	"github.com/tcc-console/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func signedTestToken(t *testing.T, sub, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func setupAuthServiceTest(t *testing.T, routes map[string]fakeRoute) (*AuthService, *session.Manager, *fakeTCCAPI, *gorm.DB) {
	t.Helper()
	logs, db := setupActionLogServiceTest(t)
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		t.Fatalf("auto migrate sessions failed: %v", err)
	}
	api := newFakeTCCAPI(t, routes)
	manager := session.NewManager(api.client(), session.NewDBStore(repository.NewSessionRepository(db)), time.Hour)
	return NewAuthService(manager, logs), manager, api, db
}

func TestAuthLoginCreatesSessionAndLogs(t *testing.T) {
	token := signedTestToken(t, "42", "manager")
	svc, manager, _, db := setupAuthServiceTest(t, map[string]fakeRoute{
		"POST /users/login": {body: fmt.Sprintf(`{"access_token":%q}`, token)},
	})

	id, err := svc.Login(context.Background(), "req-1", LoginForm{Username: " boss ", Password: "pw"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	current, err := manager.Current(context.Background(), id)
	if err != nil || current == nil {
		t.Fatalf("expected session, got %v err=%v", current, err)
	}
	if current.Role() != "MANAGER" || current.UserID() != "42" {
		t.Fatalf("unexpected claims: %+v", current.Claims)
	}

	var log models.ActionLog
	if err := db.Where("action = ?", constants.ActionLogin).First(&log).Error; err != nil {
		t.Fatalf("login not logged: %v", err)
	}
	if log.Username != "boss" || log.UserID != "42" {
		t.Fatalf("unexpected login log: %+v", log)
	}

	if err := svc.Logout(context.Background(), Actor{UserID: "42", Role: "MANAGER"}, id); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if current, _ := manager.Current(context.Background(), id); current != nil {
		t.Fatalf("session should be gone after logout")
	}
	if got := countActionLogs(t, db, constants.ActionLogout); got != 1 {
		t.Fatalf("logout logged %d times", got)
	}
}

func TestAuthLoginWithoutTokenFails(t *testing.T) {
	svc, _, _, db := setupAuthServiceTest(t, map[string]fakeRoute{
		"POST /users/login": {body: `{"msg":"ok"}`},
	})
	if _, err := svc.Login(context.Background(), "", LoginForm{Username: "a", Password: "b"}); !errors.Is(err, ErrNoAccessToken) {
		t.Fatalf("expected ErrNoAccessToken, got %v", err)
	}
	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("no session should be stored, got %d", count)
	}
}

func TestAuthLoginShowsServerError(t *testing.T) {
	svc, _, _, _ := setupAuthServiceTest(t, map[string]fakeRoute{
		"POST /users/login": {status: 401, body: `{"error":"Invalid credentials"}`},
	})
	_, err := svc.Login(context.Background(), "", LoginForm{Username: "a", Password: "b"})
	if SubmitErrorMessage(err) != "Invalid credentials" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestAuthRegisterSendsNullBranchAndNeverLogsIn(t *testing.T) {
	svc, _, api, db := setupAuthServiceTest(t, map[string]fakeRoute{
		"POST /users/register": {status: 201, body: `{"id":"u5","username":"new","role":"STAFF"}`},
	})
	user, err := svc.Register(context.Background(), "req-2", RegisterForm{Username: "new", Password: "pw"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID != "u5" {
		t.Fatalf("unexpected user: %+v", user)
	}
	call := api.lastRequest(t, "POST", "/users/register")
	want := `{"username":"new","password":"pw","role":"STAFF","branch_id":null}`
	if call.body != want {
		t.Fatalf("unexpected register body: %s", call.body)
	}
	if call.authorization != "" {
		t.Fatalf("register must not send a bearer token")
	}
	var sessions int64
	db.Model(&models.Session{}).Count(&sessions)
	if sessions != 0 {
		t.Fatalf("register must not create a session")
	}
	if got := countActionLogs(t, db, constants.ActionRegister); got != 1 {
		t.Fatalf("register logged %d times", got)
	}
}
