package service

import (
	"context"
	"strings"
	"time"

	"Cepte/internal/cli/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Diary — дневник. Записи показываются от новых к старым, поэтому
// локальная вставка идёт в начало, а загрузка упорядочена по дате.
type Diary struct {
	*Synchronizer[model.DiaryEntry]
	now func() time.Time
}

var diaryKind = Kind[model.DiaryEntry]{
	Collection:  "diaryEntries",
	Query:       Query{OrderBy: "date", Descending: true},
	InsertFront: true,
	Key:         func(e model.DiaryEntry) string { return e.ID },
	WithOwner: func(e model.DiaryEntry, owner string) model.DiaryEntry {
		e.UserID = owner
		return e
	},
}

func NewDiary(store Store, owner OwnerSource, log *zap.SugaredLogger) *Diary {
	return &Diary{
		Synchronizer: NewSynchronizer(store, owner, log, diaryKind),
		now:          time.Now,
	}
}

// Add создаёт запись с текущим временем. Пустой текст недопустим.
func (d *Diary) Add(ctx context.Context, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return resultInvalid()
	}
	return d.Insert(ctx, model.DiaryEntry{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: d.now(),
	})
}

// EditEntry редактирует запись через удаление и повторное добавление:
// старая запись пропадает, вместо неё появляется новая с новым
// идентификатором и свежим временем.
func (d *Diary) EditEntry(ctx context.Context, id, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return resultInvalid()
	}
	if _, ok := d.Get(id); !ok {
		return resultNotFound()
	}
	if res := d.Remove(ctx, id); !res.LocalApplied {
		return res
	}
	return d.Add(ctx, text)
}
