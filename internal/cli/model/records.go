package model

import (
	"fmt"
	"time"
)

// Importance — приоритет напоминания. Хранится числом (0|1|2).
type Importance int

const (
	ImportanceLow Importance = iota
	ImportanceMedium
	ImportanceHigh
)

// importanceColors — фиксированная привязка приоритета к цвету в UI.
// Цвет хранится в записи отдельным полем: сервер эту привязку не проверяет.
var importanceColors = map[Importance]string{
	ImportanceLow:    "00FF00",
	ImportanceMedium: "FFFF00",
	ImportanceHigh:   "FF0000",
}

// Color возвращает hex-цвет, закреплённый за приоритетом.
func (i Importance) Color() string {
	if c, ok := importanceColors[i]; ok {
		return c
	}
	return "000000"
}

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "low"
	case ImportanceMedium:
		return "medium"
	case ImportanceHigh:
		return "high"
	}
	return fmt.Sprintf("importance(%d)", int(i))
}

// ParseImportance разбирает значение из CLI.
func ParseImportance(s string) (Importance, error) {
	switch s {
	case "low":
		return ImportanceLow, nil
	case "medium", "med":
		return ImportanceMedium, nil
	case "high":
		return ImportanceHigh, nil
	}
	return 0, fmt.Errorf("unknown importance: %q (expected low|medium|high)", s)
}

// ShoppingItem — позиция списка покупок.
type ShoppingItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"urunAdi"`
	Price   float64 `json:"fiyat"`
	Checked bool    `json:"isChecked"`
	UserID  string  `json:"userID,omitempty"`
}

// Reminder — напоминание с приоритетом.
type Reminder struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Importance Importance `json:"importance"`
	Color      string     `json:"color"`
	UserID     string     `json:"userID,omitempty"`
}

// DiaryEntry — запись дневника. CreatedAt выставляется один раз при
// создании и больше не меняется.
type DiaryEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
	UserID    string    `json:"userID,omitempty"`
}

// FormattedDateTime — отображаемая дата записи; вычисляется, не хранится.
func (e DiaryEntry) FormattedDateTime() string {
	return e.CreatedAt.Local().Format("02.01.2006 15:04")
}

// ScheduledReminder — запись календарного напоминания (anımsatıcı).
type ScheduledReminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"baslik"`
	Description string    `json:"aciklama"`
	Done        bool      `json:"durum"`
	DueAt       time.Time `json:"tarih"`
	UserID      string    `json:"userID,omitempty"`
}

// Profile — профиль пользователя.
type Profile struct {
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	Username         string    `json:"username"`
	BirthDate        time.Time `json:"birthDate,omitempty"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate,omitempty"`
}
