package service

import (
	"context"
	"strings"

	"Cepte/internal/cli/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderList — список важных заметок. Цвет записи всегда выводится
// из важности и хранится рядом с ней.
type ReminderList struct {
	*Synchronizer[model.Reminder]
}

var reminderKind = Kind[model.Reminder]{
	Collection: "reminders",
	Key:        func(r model.Reminder) string { return r.ID },
	WithOwner: func(r model.Reminder, owner string) model.Reminder {
		r.UserID = owner
		return r
	},
}

func NewReminderList(store Store, owner OwnerSource, log *zap.SugaredLogger) *ReminderList {
	return &ReminderList{NewSynchronizer(store, owner, log, reminderKind)}
}

// Add добавляет заметку с заданной важностью. Пустой текст недопустим.
func (l *ReminderList) Add(ctx context.Context, text string, importance model.Importance) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return resultInvalid()
	}
	return l.Insert(ctx, model.Reminder{
		ID:         uuid.NewString(),
		Text:       text,
		Importance: importance,
		Color:      importance.Color(),
	})
}

// Edit заменяет текст заметки, важность и цвет не меняются.
func (l *ReminderList) Edit(ctx context.Context, id, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return resultInvalid()
	}
	return l.Update(ctx, id, func(r model.Reminder) model.Reminder {
		r.Text = text
		return r
	})
}

// Reclassify меняет важность заметки, пересчитывая цвет.
func (l *ReminderList) Reclassify(ctx context.Context, id string, importance model.Importance) Result {
	return l.Update(ctx, id, func(r model.Reminder) model.Reminder {
		r.Importance = importance
		r.Color = importance.Color()
		return r
	})
}
