package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"Cepte/internal/cli/service"
)

// RecordStore — удалённое документное хранилище поверх Client.
// Реализует service.Store: одна операция — один HTTP-вызов.
type RecordStore struct {
	client *Client
}

func NewRecordStore(client *Client) *RecordStore {
	return &RecordStore{client: client}
}

// Upsert целиком перезаписывает документ коллекции.
func (s *RecordStore) Upsert(ctx context.Context, collection, key string, doc any) error {
	path := "/api/store/" + url.PathEscape(collection) + "/" + url.PathEscape(key)
	resp, body, err := s.client.doJSON(ctx, http.MethodPut, path, doc)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, body)
	}
	return nil
}

// Delete удаляет документ. Отсутствие ключа сервер считает успехом.
func (s *RecordStore) Delete(ctx context.Context, collection, key string) error {
	path := "/api/store/" + url.PathEscape(collection) + "/" + url.PathEscape(key)
	resp, body, err := s.client.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, body)
	}
	return nil
}

// FetchAll возвращает все документы коллекции текущего пользователя.
func (s *RecordStore) FetchAll(ctx context.Context, collection string, q service.Query) ([]json.RawMessage, error) {
	path := "/api/store/" + url.PathEscape(collection)
	if q.OrderBy != "" {
		v := url.Values{}
		v.Set("order_by", q.OrderBy)
		if q.Descending {
			v.Set("desc", "1")
		}
		path += "?" + v.Encode()
	}
	resp, body, err := s.client.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, body)
	}
	var out struct {
		Documents []json.RawMessage `json:"documents"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}
