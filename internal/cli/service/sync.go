package service

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Store — клиент удалённого документного хранилища. Каждая операция —
// один сетевой вызов, без ретраев и кеширования.
type Store interface {
	// Upsert целиком перезаписывает документ коллекции по ключу (идемпотентно).
	Upsert(ctx context.Context, collection, key string, doc any) error
	// Delete удаляет документ; отсутствие ключа — не ошибка.
	Delete(ctx context.Context, collection, key string) error
	// FetchAll возвращает все документы коллекции текущего пользователя.
	FetchAll(ctx context.Context, collection string, q Query) ([]json.RawMessage, error)
}

// Query — параметры выборки FetchAll.
type Query struct {
	OrderBy    string
	Descending bool
}

// OwnerSource отдаёт идентификатор текущего владельца записей.
// Пустая строка — владельца нет (не аутентифицирован).
type OwnerSource interface {
	Identity() string
}

// Kind описывает один вид записей: коллекцию, порядок выборки,
// позицию вставки и доступ к ключу/владельцу записи.
type Kind[T any] struct {
	Collection  string
	Query       Query
	InsertFront bool
	Key         func(T) string
	WithOwner   func(T, string) T
}

// Synchronizer владеет упорядоченной коллекцией записей одного вида в
// памяти и зеркалирует мутации в удалённое хранилище. Модель
// оптимистичная: локальная мутация применяется первой и безусловно,
// удалённая ошибка только логируется (см. Result).
type Synchronizer[T any] struct {
	mu    sync.Mutex
	kind  Kind[T]
	store Store
	owner OwnerSource
	log   *zap.SugaredLogger
	items []T
}

// NewSynchronizer создаёт синхронизатор. Контекст владельца (сессия)
// передаётся явно при конструировании.
func NewSynchronizer[T any](store Store, owner OwnerSource, log *zap.SugaredLogger, kind Kind[T]) *Synchronizer[T] {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Synchronizer[T]{kind: kind, store: store, owner: owner, log: log}
}

// Load целиком замещает локальную коллекцию свежим снимком хранилища.
// Без владельца коллекция становится пустой. Повторные вызовы безопасны.
// Документы, не декодируемые в T, молча отбрасываются.
func (s *Synchronizer[T]) Load(ctx context.Context) error {
	ownerID := s.owner.Identity()
	if ownerID == "" {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return nil
	}

	raw, err := s.store.FetchAll(ctx, s.kind.Collection, s.kind.Query)
	if err != nil {
		s.log.Errorw("fetch failed", "collection", s.kind.Collection, "error", err)
		return err
	}

	fresh := make([]T, 0, len(raw))
	for _, doc := range raw {
		var item T
		if err := json.Unmarshal(doc, &item); err != nil {
			s.log.Debugw("dropping undecodable document", "collection", s.kind.Collection, "error", err)
			continue
		}
		fresh = append(fresh, item)
	}

	s.mu.Lock()
	s.items = fresh
	s.mu.Unlock()
	return nil
}

// Items возвращает копию локальной коллекции.
func (s *Synchronizer[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get возвращает запись по ключу.
func (s *Synchronizer[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(key); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Len — размер локальной коллекции.
func (s *Synchronizer[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Insert добавляет запись локально (в конец или в начало — по виду) и
// отправляет её в хранилище. Локальная вставка происходит и без
// владельца — удалённая запись в этом случае не выполняется.
func (s *Synchronizer[T]) Insert(ctx context.Context, item T) Result {
	ownerID := s.owner.Identity()
	item = s.kind.WithOwner(item, ownerID)

	s.mu.Lock()
	if s.kind.InsertFront {
		s.items = append([]T{item}, s.items...)
	} else {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()

	return s.push(ctx, ownerID, item)
}

// Update находит запись по ключу и заменяет её результатом mutate,
// затем отправляет полную обновлённую запись в хранилище.
// Отсутствующий ключ — no-op (UI не просит правок записей, которых
// у него нет).
func (s *Synchronizer[T]) Update(ctx context.Context, key string, mutate func(T) T) Result {
	ownerID := s.owner.Identity()

	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return resultNotFound()
	}
	s.items[i] = mutate(s.items[i])
	updated := s.items[i]
	s.mu.Unlock()

	return s.push(ctx, ownerID, updated)
}

// Remove удаляет запись локально и в хранилище.
func (s *Synchronizer[T]) Remove(ctx context.Context, key string) Result {
	ownerID := s.owner.Identity()

	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return resultNotFound()
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.mu.Unlock()

	if ownerID == "" {
		return Result{LocalApplied: true, Status: StatusNotAuthenticated}
	}
	if err := s.store.Delete(ctx, s.kind.Collection, key); err != nil {
		s.log.Errorw("delete failed", "collection", s.kind.Collection, "key", key, "error", err)
		return Result{LocalApplied: true, Status: StatusRemoteError}
	}
	return resultOK()
}

// push зеркалирует запись в хранилище после применённой локальной мутации.
func (s *Synchronizer[T]) push(ctx context.Context, ownerID string, item T) Result {
	if ownerID == "" {
		return Result{LocalApplied: true, Status: StatusNotAuthenticated}
	}
	if err := s.store.Upsert(ctx, s.kind.Collection, s.kind.Key(item), item); err != nil {
		s.log.Errorw("upsert failed", "collection", s.kind.Collection, "key", s.kind.Key(item), "error", err)
		return Result{LocalApplied: true, Status: StatusRemoteError}
	}
	return resultOK()
}

// indexOf ищет запись по ключу. Вызывается под mu.
func (s *Synchronizer[T]) indexOf(key string) int {
	for i := range s.items {
		if s.kind.Key(s.items[i]) == key {
			return i
		}
	}
	return -1
}
