package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"Cepte/internal/cli/model"
)

// AuthAPI — аутентификация и профиль поверх Client. Реализует
// service.AuthClient и service.ProfileClient. Подписчики уведомляются
// при восстановлении сохранённой сессии (Restore); явные SignIn/SignUp
// и SignOut состояние сессии выставляют сами.
type AuthAPI struct {
	client *Client

	mu        sync.Mutex
	listeners map[int]func(string)
	nextID    int
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client, listeners: make(map[int]func(string))}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userIDResponse struct {
	UserID string `json:"user_id"`
}

// SignUp создаёт учётную запись и сохраняет полученный токен.
func (a *AuthAPI) SignUp(ctx context.Context, email, password string) (string, error) {
	return a.authenticate(ctx, "/api/user/register", email, password)
}

// SignIn входит в существующую учётную запись и сохраняет токен.
func (a *AuthAPI) SignIn(ctx context.Context, email, password string) (string, error) {
	return a.authenticate(ctx, "/api/user/login", email, password)
}

func (a *AuthAPI) authenticate(ctx context.Context, path, email, password string) (string, error) {
	resp, body, err := a.client.doJSON(ctx, http.MethodPost, path, credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp, body)
	}
	var out userIDResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if out.UserID == "" {
		return "", fmt.Errorf("no user id in response")
	}
	if err := a.client.persistAuthFromResponse(resp); err != nil {
		return "", err
	}
	if err := a.client.tokens.SaveUserID(out.UserID); err != nil {
		return "", err
	}
	return out.UserID, nil
}

// SignOut инвалидирует сессию на сервере и чистит локальный токен.
// При сетевой ошибке токен сохраняется — сессия остаётся действующей.
func (a *AuthAPI) SignOut(ctx context.Context) error {
	resp, body, err := a.client.doJSON(ctx, http.MethodPost, "/api/user/logout", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, body)
	}
	return a.client.tokens.Clear()
}

// Subscribe регистрирует подписчика на смену identity.
func (a *AuthAPI) Subscribe(fn func(identity string)) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

// Restore поднимает сохранённую сессию из файлового хранилища и
// уведомляет подписчиков. Отсутствие сохранённого токена — не ошибка.
func (a *AuthAPI) Restore() string {
	if _, err := a.client.tokens.LoadToken(); err != nil {
		return ""
	}
	id, err := a.client.tokens.LoadUserID()
	if err != nil {
		return ""
	}
	a.notify(id)
	return id
}

func (a *AuthAPI) notify(identity string) {
	a.mu.Lock()
	fns := make([]func(string), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.Unlock()
	for _, fn := range fns {
		fn(identity)
	}
}

// FetchProfile возвращает профиль текущего пользователя.
func (a *AuthAPI) FetchProfile(ctx context.Context) (*model.Profile, error) {
	resp, body, err := a.client.doJSON(ctx, http.MethodGet, "/api/user/profile", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, body)
	}
	var p model.Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile записывает изменяемые поля профиля.
func (a *AuthAPI) SaveProfile(ctx context.Context, p model.Profile) error {
	payload := struct {
		FullName  string `json:"fullName"`
		Username  string `json:"username"`
		BirthDate string `json:"birthDate,omitempty"`
	}{FullName: p.FullName, Username: p.Username}
	if !p.BirthDate.IsZero() {
		payload.BirthDate = p.BirthDate.Format(time.RFC3339)
	}
	resp, body, err := a.client.doJSON(ctx, http.MethodPut, "/api/user/profile", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, body)
	}
	return nil
}
