package model

import "time"

// Document — один JSON-документ в коллекции пользователя.
// Ключ составной: (user_id, collection, doc_id) — пространство имён
// users/{userID}/{collection}/{docID}. Body хранится как есть и при
// upsert всегда перезаписывается целиком.
type Document struct {
	UserID     string `gorm:"primaryKey;type:uuid"`
	Collection string `gorm:"primaryKey;size:64"`
	DocID      string `gorm:"primaryKey;type:uuid"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Body []byte `gorm:"not null"`

	// CreatedAt фиксирует порядок вставки — это порядок выдачи по умолчанию.
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
