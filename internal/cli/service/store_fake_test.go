package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
)

// fakeStore — хранилище в памяти для тестов синхронизаторов. Считает
// вызовы и умеет имитировать отказ сети.
type fakeStore struct {
	docs map[string][]fakeDoc // collection -> документы в порядке вставки

	upserts   int
	deletes   int
	fetches   int
	failUps   bool
	failDel   bool
	failFetch bool
}

type fakeDoc struct {
	key string
	raw json.RawMessage
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]fakeDoc)}
}

var errFakeNetwork = errors.New("network unreachable")

func (f *fakeStore) Upsert(_ context.Context, collection, key string, doc any) error {
	f.upserts++
	if f.failUps {
		return errFakeNetwork
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	for i, d := range f.docs[collection] {
		if d.key == key {
			f.docs[collection][i].raw = raw
			return nil
		}
	}
	f.docs[collection] = append(f.docs[collection], fakeDoc{key: key, raw: raw})
	return nil
}

func (f *fakeStore) Delete(_ context.Context, collection, key string) error {
	f.deletes++
	if f.failDel {
		return errFakeNetwork
	}
	for i, d := range f.docs[collection] {
		if d.key == key {
			f.docs[collection] = append(f.docs[collection][:i], f.docs[collection][i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) FetchAll(_ context.Context, collection string, q Query) ([]json.RawMessage, error) {
	f.fetches++
	if f.failFetch {
		return nil, errFakeNetwork
	}
	docs := make([]fakeDoc, len(f.docs[collection]))
	copy(docs, f.docs[collection])
	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			a := topLevelString(docs[i].raw, q.OrderBy)
			b := topLevelString(docs[j].raw, q.OrderBy)
			if q.Descending {
				return a > b
			}
			return a < b
		})
	}
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = d.raw
	}
	return out, nil
}

func (f *fakeStore) calls() int {
	return f.upserts + f.deletes + f.fetches
}

func topLevelString(raw json.RawMessage, field string) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	if v, ok := m[field].(string); ok {
		return v
	}
	return ""
}

// fixedOwner — источник владельца с постоянным значением.
type fixedOwner string

func (o fixedOwner) Identity() string { return string(o) }
