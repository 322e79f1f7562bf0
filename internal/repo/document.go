package repo

import (
	"context"

	"Cepte/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository определяет контракт доступа к документам пользователя.
type DocumentRepository interface {
	// Upsert вставляет документ или целиком перезаписывает существующий по ключу.
	// Операция идемпотентна: повторная запись того же документа не меняет состояние.
	Upsert(ctx context.Context, doc *model.Document) error

	// Delete удаляет документ по ключу. Отсутствие документа ошибкой не считается.
	Delete(ctx context.Context, userID, collection, docID string) error

	// ListByCollection возвращает все документы коллекции пользователя
	// в порядке вставки (created_at ASC).
	ListByCollection(ctx context.Context, userID, collection string) ([]model.Document, error)
}

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository создаёт реализацию репозитория для Document.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Upsert(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "collection"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(doc).Error
}

func (r *documentRepo) Delete(ctx context.Context, userID, collection, docID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND collection = ? AND doc_id = ?", userID, collection, docID).
		Delete(&model.Document{}).Error
}

func (r *documentRepo) ListByCollection(ctx context.Context, userID, collection string) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND collection = ?", userID, collection).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
