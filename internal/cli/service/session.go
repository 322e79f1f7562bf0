package service

import (
	"context"
	"sync"
	"time"

	"Cepte/internal/cli/model"

	"go.uber.org/zap"
)

// AuthClient — граница аутентификации, потребляемая сессией.
type AuthClient interface {
	// SignUp создаёт новую учётную запись и возвращает её идентификатор.
	// Подписчики об этом НЕ уведомляются: сессия выставляет состояние сама.
	SignUp(ctx context.Context, email, password string) (string, error)
	// SignIn аутентифицирует существующую учётную запись.
	SignIn(ctx context.Context, email, password string) (string, error)
	// SignOut инвалидирует сессию.
	SignOut(ctx context.Context) error
	// Subscribe регистрирует подписчика на смену identity ("" — выход).
	// Возвращает функцию отписки.
	Subscribe(fn func(identity string)) (unsubscribe func())
}

// ProfileClient — доступ к документу профиля текущего пользователя.
type ProfileClient interface {
	FetchProfile(ctx context.Context) (*model.Profile, error)
	SaveProfile(ctx context.Context, p model.Profile) error
}

// Session владеет состоянием аутентификации: текущим владельцем,
// профилем и слотом пользовательской ошибки. Создаётся явно и
// передаётся синхронизаторам как OwnerSource.
// Жизненный цикл: NewSession → Init → [active] → Close.
type Session struct {
	mu       sync.Mutex
	auth     AuthClient
	profiles ProfileClient
	log      *zap.SugaredLogger

	identity string
	profile  *model.Profile
	errMsg   string

	unsubscribe func()
}

func NewSession(auth AuthClient, profiles ProfileClient, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{auth: auth, profiles: profiles, log: log}
}

// Init подписывает сессию на внешние смены identity. Реализация auth
// может уведомить немедленно (восстановленный токен).
func (s *Session) Init() {
	s.unsubscribe = s.auth.Subscribe(func(identity string) {
		s.handleAuthChange(context.Background(), identity)
	})
}

// Close отписывается от auth-событий.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Identity реализует OwnerSource. Пустая строка — SignedOut.
func (s *Session) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Authenticated — есть ли действующий владелец.
func (s *Session) Authenticated() bool {
	return s.Identity() != ""
}

// Profile возвращает загруженный профиль. Может быть nil и при наличии
// identity — если документ профиля не удалось получить.
func (s *Session) Profile() *model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Err — слот пользовательской ошибки (только ошибки аутентификации).
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// handleAuthChange реагирует на внешнюю смену identity: при появлении
// пользователя подтягивает профиль, при выходе — сбрасывает всё,
// включая слот ошибки.
func (s *Session) handleAuthChange(ctx context.Context, identity string) {
	if identity == "" {
		s.mu.Lock()
		s.identity = ""
		s.profile = nil
		s.errMsg = ""
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	p, err := s.profiles.FetchProfile(ctx)
	if err != nil {
		// identity остаётся действующей, профиль отсутствует
		s.log.Warnw("profile fetch failed", "user_id", identity, "error", err)
		p = nil
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

// SignUp создаёт учётную запись и записывает документ профиля. Любая
// ошибка попадает в слот ошибки, состояние остаётся SignedOut. Полный
// успех аутентифицирует немедленно, не дожидаясь подписки.
func (s *Session) SignUp(ctx context.Context, email, password, fullName, username string, birthDate time.Time) bool {
	identity, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		s.setErr("Kayıt yapılamadı: " + err.Error())
		return false
	}

	profile := model.Profile{
		UserID:    identity,
		FullName:  fullName,
		Username:  username,
		BirthDate: birthDate,
		Email:     email,
	}
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		s.setErr("Kayıt yapılamadı: " + err.Error())
		return false
	}

	s.mu.Lock()
	s.identity = identity
	s.profile = &profile
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

// SignIn аутентифицирует по e-mail и паролю. Ошибка — в слот ошибки.
func (s *Session) SignIn(ctx context.Context, email, password string) bool {
	identity, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		s.setErr("Hatalı Giriş: " + err.Error())
		return false
	}

	s.mu.Lock()
	s.identity = identity
	s.errMsg = ""
	s.mu.Unlock()

	// профиль подтягивается здесь же; сбой оставляет identity без профиля
	p, perr := s.profiles.FetchProfile(ctx)
	if perr != nil {
		s.log.Warnw("profile fetch failed", "user_id", identity, "error", perr)
		p = nil
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return true
}

// SignOut инвалидирует сессию. Ошибка только логируется — у этого пути
// нет пользовательского слота ошибки.
func (s *Session) SignOut(ctx context.Context) {
	if err := s.auth.SignOut(ctx); err != nil {
		s.log.Errorw("sign out failed", "error", err)
		return
	}
	s.handleAuthChange(ctx, "")
}

func (s *Session) setErr(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
