package service

import (
	"context"
	"strings"
	"time"

	"Cepte/internal/cli/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Agenda — напоминания с датой исполнения. Загрузка упорядочена по
// дате от поздних к ранним, новые записи встают в начало.
type Agenda struct {
	*Synchronizer[model.ScheduledReminder]
}

var agendaKind = Kind[model.ScheduledReminder]{
	Collection:  "animsaticilar",
	Query:       Query{OrderBy: "tarih", Descending: true},
	InsertFront: true,
	Key:         func(r model.ScheduledReminder) string { return r.ID },
	WithOwner: func(r model.ScheduledReminder, owner string) model.ScheduledReminder {
		r.UserID = owner
		return r
	},
}

func NewAgenda(store Store, owner OwnerSource, log *zap.SugaredLogger) *Agenda {
	return &Agenda{NewSynchronizer(store, owner, log, agendaKind)}
}

// Add добавляет напоминание. Заголовок обязателен, описание — нет.
func (a *Agenda) Add(ctx context.Context, title, description string, dueAt time.Time) Result {
	title = strings.TrimSpace(title)
	if title == "" {
		return resultInvalid()
	}
	return a.Insert(ctx, model.ScheduledReminder{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		DueAt:       dueAt,
	})
}

// ToggleDone переключает отметку выполнения.
func (a *Agenda) ToggleDone(ctx context.Context, id string) Result {
	return a.Update(ctx, id, func(r model.ScheduledReminder) model.ScheduledReminder {
		r.Done = !r.Done
		return r
	})
}

// Edit заменяет заголовок, описание и дату напоминания.
func (a *Agenda) Edit(ctx context.Context, id, title, description string, dueAt time.Time) Result {
	title = strings.TrimSpace(title)
	if title == "" {
		return resultInvalid()
	}
	return a.Update(ctx, id, func(r model.ScheduledReminder) model.ScheduledReminder {
		r.Title = title
		r.Description = strings.TrimSpace(description)
		r.DueAt = dueAt
		return r
	})
}
