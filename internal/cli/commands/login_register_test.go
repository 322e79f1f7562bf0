package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"Cepte/internal/config"
)

func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)
	fs := newFakeServer(t)

	cfg := &config.Config{ServerURL: fs.srv.URL}
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"alice@example.com", "secret"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// проверим, что токен сохранён: %CONFIG%/Cepte/auth_token
	cfgDir, _ := os.UserConfigDir()
	b, err := os.ReadFile(filepath.Join(cfgDir, "Cepte", "auth_token"))
	if err != nil || len(b) == 0 {
		t.Fatalf("auth token not saved: %v", err)
	}

	// 401 Unauthorized → ошибка с текстом сервера в слоте
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
	}))
	defer ts401.Close()
	if err := cmd.Run(context.Background(), &config.Config{ServerURL: ts401.URL}, []string{"alice@example.com", "bad"}); err == nil {
		t.Fatalf("expected error for 401")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyEmail"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestRegister_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)
	fs := newFakeServer(t)

	cfg := &config.Config{ServerURL: fs.srv.URL}
	cmd := registerCmd{}
	args := []string{"bob@example.com", "pwd", "Bob B", "bob", "1991-05-20"}
	if err := cmd.Run(context.Background(), cfg, args); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}
	cfgDir, _ := os.UserConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "Cepte", "user_id")); err != nil {
		t.Fatalf("user id not saved: %v", err)
	}

	// кривая дата рождения
	if err := cmd.Run(context.Background(), cfg, []string{"b@e.c", "pwd", "B", "b", "20-05-1991"}); err == nil {
		t.Fatalf("expected error for bad birth date")
	}

	// 409 Conflict
	ts409 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	}))
	defer ts409.Close()
	if err := cmd.Run(context.Background(), &config.Config{ServerURL: ts409.URL}, args); err == nil {
		t.Fatalf("expected conflict error")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"b@e.c", "pwd"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage on short args")
	}
}

func TestLogout_Run(t *testing.T) {
	withTempConfig(t)
	fs := newFakeServer(t)
	cfg := &config.Config{ServerURL: fs.srv.URL}

	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"a@b.c", "pwd"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}
	cfgDir, _ := os.UserConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "Cepte", "auth_token")); err == nil {
		t.Fatalf("auth token should be removed after logout")
	}
}

func TestProfile_Run_RequiresAuth(t *testing.T) {
	withTempConfig(t)
	fs := newFakeServer(t)
	cfg := &config.Config{ServerURL: fs.srv.URL}

	if err := (profileCmd{}).Run(context.Background(), cfg, nil); err == nil {
		t.Fatalf("profile without login should fail")
	}

	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"a@b.c", "pwd"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	defer func() { Out = old }()
	if err := (profileCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Test User")) {
		t.Fatalf("profile output missing full name: %q", buf.String())
	}
}
