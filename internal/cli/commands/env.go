package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"Cepte/internal/cli/api"
	"Cepte/internal/cli/service"
	"Cepte/internal/config"

	"go.uber.org/zap"
)

// env собирает клиентский стек для одного запуска команды: HTTP-клиент,
// сессию и хранилище записей. Сохранённая сессия восстанавливается сразу.
type env struct {
	session *service.Session
	auth    *api.AuthAPI
	store   *api.RecordStore
	log     *zap.SugaredLogger
}

// clientLogger — диагностика клиента: без -v всё уходит в Nop, с -v
// сбои store-слоя и сессии видны в stderr.
func clientLogger(cfg *config.Config) *zap.SugaredLogger {
	if !cfg.Verbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func newEnv(cfg *config.Config) *env {
	log := clientLogger(cfg)
	client := api.NewClient(strings.TrimRight(cfg.ServerURL, "/"))
	auth := api.NewAuthAPI(client)
	session := service.NewSession(auth, auth, log)
	session.Init()
	auth.Restore()
	return &env{
		session: session,
		auth:    auth,
		store:   api.NewRecordStore(client),
		log:     log,
	}
}

func (e *env) close() {
	e.session.Close()
	_ = e.log.Sync()
}

// requireAuth возвращает ошибку, если вход не выполнен.
func (e *env) requireAuth() error {
	if !e.session.Authenticated() {
		return errors.New("not signed in (run: login <email> <password>)")
	}
	return nil
}

// finish переводит итог мутации в ошибку команды. Для одноразового
// процесса локально-применённое без подтверждения сервером изменение
// потеряно, поэтому любой исход кроме OK — ошибка.
func finish(res service.Result) error {
	switch res.Status {
	case service.StatusOK:
		return nil
	case service.StatusInvalid:
		return errors.New("invalid input")
	case service.StatusNotAuthenticated:
		return errors.New("not signed in")
	case service.StatusNotFound:
		return errors.New("no such entry")
	case service.StatusRemoteError:
		return errors.New("server unreachable, change not saved")
	}
	return fmt.Errorf("unexpected status: %s", res.Status)
}

// parseIndex разбирает 1-based номер записи из вывода list.
func parseIndex(arg string, size int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > size {
		return 0, fmt.Errorf("bad entry number %q (have %d entries)", arg, size)
	}
	return n - 1, nil
}

// loadList восстанавливает коллекцию перед операцией над ней.
func loadList[T any](ctx context.Context, s *service.Synchronizer[T]) error {
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}
	return nil
}
