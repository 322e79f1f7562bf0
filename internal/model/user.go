package model

import "time"

// User — серверная модель пользователя. ID совпадает с Firebase-подобным
// идентификатором владельца (userID) во всех документах пользователя.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Поля профиля
	FullName  string
	Username  string
	BirthDate *time.Time

	// Дата регистрации (registrationDate в профиле)
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
