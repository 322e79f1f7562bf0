package repo

import (
	"context"
	"testing"

	"Cepte/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestUser(t *testing.T, r UserRepository) string {
	t.Helper()
	id := uuid.NewString()
	_, err := r.CreateUser(context.Background(), &model.User{ID: id, Email: id + "@example.com", PasswordHash: "hash"})
	assert.NoError(t, err)
	return id
}

func TestDocumentRepository_UpsertOverwritesWhole(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	userID := newTestUser(t, users)
	docID := uuid.NewString()

	err := r.Upsert(ctx, &model.Document{
		UserID: userID, Collection: "alisverisListesi", DocID: docID,
		Body: []byte(`{"id":"` + docID + `","urunAdi":"süt","fiyat":30,"isChecked":false}`),
	})
	assert.NoError(t, err)

	// повторный upsert по тому же ключу — перезапись целиком, без дублей
	err = r.Upsert(ctx, &model.Document{
		UserID: userID, Collection: "alisverisListesi", DocID: docID,
		Body: []byte(`{"id":"` + docID + `","urunAdi":"süt","fiyat":32,"isChecked":true}`),
	})
	assert.NoError(t, err)

	docs, err := r.ListByCollection(ctx, userID, "alisverisListesi")
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Contains(t, string(docs[0].Body), `"fiyat":32`)
}

func TestDocumentRepository_UpsertIdempotent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	userID := newTestUser(t, users)
	docID := uuid.NewString()
	body := []byte(`{"id":"` + docID + `","text":"not"}`)

	doc := &model.Document{UserID: userID, Collection: "reminders", DocID: docID, Body: body}
	assert.NoError(t, r.Upsert(ctx, doc))
	assert.NoError(t, r.Upsert(ctx, &model.Document{UserID: userID, Collection: "reminders", DocID: docID, Body: body}))

	docs, err := r.ListByCollection(ctx, userID, "reminders")
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, string(body), string(docs[0].Body))
}

func TestDocumentRepository_DeleteNoopWhenMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	userID := newTestUser(t, users)

	// удаление несуществующего ключа — не ошибка
	assert.NoError(t, r.Delete(ctx, userID, "diaryEntries", uuid.NewString()))

	docID := uuid.NewString()
	assert.NoError(t, r.Upsert(ctx, &model.Document{
		UserID: userID, Collection: "diaryEntries", DocID: docID, Body: []byte(`{"text":"x"}`),
	}))
	assert.NoError(t, r.Delete(ctx, userID, "diaryEntries", docID))

	docs, err := r.ListByCollection(ctx, userID, "diaryEntries")
	assert.NoError(t, err)
	assert.Len(t, docs, 0)
}

func TestDocumentRepository_ListInsertionOrderAndScoping(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	alice := newTestUser(t, users)
	bob := newTestUser(t, users)

	first, second := uuid.NewString(), uuid.NewString()
	assert.NoError(t, r.Upsert(ctx, &model.Document{UserID: alice, Collection: "reminders", DocID: first, Body: []byte(`{"n":1}`)}))
	assert.NoError(t, r.Upsert(ctx, &model.Document{UserID: alice, Collection: "reminders", DocID: second, Body: []byte(`{"n":2}`)}))
	assert.NoError(t, r.Upsert(ctx, &model.Document{UserID: bob, Collection: "reminders", DocID: uuid.NewString(), Body: []byte(`{"n":3}`)}))

	docs, err := r.ListByCollection(ctx, alice, "reminders")
	assert.NoError(t, err)
	if assert.Len(t, docs, 2) {
		assert.Equal(t, first, docs[0].DocID)
		assert.Equal(t, second, docs[1].DocID)
	}

	// чужая коллекция не видна
	docs, err = r.ListByCollection(ctx, bob, "reminders")
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
}
