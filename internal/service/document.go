package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"Cepte/internal/model"
	"Cepte/internal/repo"
)

var (
	// ErrBadCollection — недопустимое имя коллекции.
	ErrBadCollection = errors.New("invalid collection name")
	// ErrBadDocument — тело документа не является JSON-объектом.
	ErrBadDocument = errors.New("document body must be a JSON object")
)

var collectionRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// ValidateCollection проверяет, что имя коллекции безопасно для URL и БД.
func ValidateCollection(name string) error {
	if !collectionRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrBadCollection, name)
	}
	return nil
}

// DocumentService — операции над документами в пространстве имён пользователя.
type DocumentService struct {
	repo repo.DocumentRepository
}

func NewDocumentService(r repo.DocumentRepository) *DocumentService {
	return &DocumentService{repo: r}
}

// Put целиком перезаписывает документ по ключу (идемпотентный upsert).
func (s *DocumentService) Put(ctx context.Context, userID, collection, docID string, body []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return ErrBadDocument
	}
	if probe == nil {
		// литерал null декодируется в nil-карту без ошибки
		return ErrBadDocument
	}
	return s.repo.Upsert(ctx, &model.Document{
		UserID:     userID,
		Collection: collection,
		DocID:      docID,
		Body:       body,
	})
}

// Remove удаляет документ. Отсутствующий ключ — не ошибка.
func (s *DocumentService) Remove(ctx context.Context, userID, collection, docID string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, collection, docID)
}

// List возвращает тела всех документов коллекции. Без orderBy — порядок
// вставки; с orderBy — сортировка по верхнеуровневому полю JSON (числа
// сравниваются как числа, RFC3339-метки времени — как моменты времени
// независимо от смещения зоны, остальное — как строки). Документы без
// поля сортировки уходят в конец.
func (s *DocumentService) List(ctx context.Context, userID, collection, orderBy string, descending bool) ([]json.RawMessage, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}
	docs, err := s.repo.ListByCollection(ctx, userID, collection)
	if err != nil {
		return nil, err
	}
	bodies := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		bodies = append(bodies, json.RawMessage(d.Body))
	}
	if orderBy == "" {
		return bodies, nil
	}

	type keyed struct {
		raw    json.RawMessage
		num    float64
		str    string
		ts     time.Time
		isTime bool
		kind   int // 0 — число, 1 — строка, 2 — ключ отсутствует/не читается
	}
	keys := make([]keyed, 0, len(bodies))
	for _, raw := range bodies {
		k := keyed{raw: raw, kind: 2}
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) == nil {
			if fv, ok := obj[orderBy]; ok {
				var sv string
				if json.Unmarshal(fv, &sv) == nil {
					k.kind, k.str = 1, sv
					if n, err := strconv.ParseFloat(sv, 64); err == nil {
						k.kind, k.num = 0, n
					} else if ts, err := time.Parse(time.RFC3339, sv); err == nil {
						// клиенты сериализуют время с локальным смещением,
						// строковое сравнение здесь врёт
						k.ts, k.isTime = ts, true
					}
				} else {
					var nv float64
					if json.Unmarshal(fv, &nv) == nil {
						k.kind, k.num = 0, nv
					}
				}
			}
		}
		keys = append(keys, k)
	}
	// -1, 0, 1 в порядке возрастания; числа раньше строк
	compare := func(a, b keyed) int {
		switch {
		case a.kind != b.kind:
			if a.kind < b.kind {
				return -1
			}
			return 1
		case a.kind == 0:
			switch {
			case a.num < b.num:
				return -1
			case a.num > b.num:
				return 1
			}
			return 0
		default:
			if a.isTime && b.isTime {
				switch {
				case a.ts.Before(b.ts):
					return -1
				case a.ts.After(b.ts):
					return 1
				}
				return 0
			}
			switch {
			case a.str < b.str:
				return -1
			case a.str > b.str:
				return 1
			}
			return 0
		}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.kind == 2 || b.kind == 2 {
			// отсутствующий ключ всегда в конце, независимо от направления
			return a.kind != 2 && b.kind == 2
		}
		if descending {
			return compare(a, b) > 0
		}
		return compare(a, b) < 0
	})
	out := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.raw)
	}
	return out, nil
}
