package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/идентификатор) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// fakeServer — HTTP-заглушка серверного API с хранилищем документов в
// памяти. Достаточно для прогона команд целиком.
type fakeServer struct {
	mu   sync.Mutex
	docs map[string][]json.RawMessage // collection -> документы в порядке вставки
	keys map[string][]string
	srv  *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{
		docs: make(map[string][]json.RawMessage),
		keys: make(map[string][]string),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/user/login" || r.URL.Path == "/api/user/register":
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-test"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user_id":"uid-test"}`))
	case r.URL.Path == "/api/user/logout":
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/api/user/profile" && r.Method == http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":"uid-test","fullName":"Test User","username":"test","email":"t@e.st"}`))
	case r.URL.Path == "/api/user/profile" && r.Method == http.MethodPut:
		w.WriteHeader(http.StatusOK)
	case strings.HasPrefix(r.URL.Path, "/api/store/"):
		f.handleStore(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeServer) handleStore(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/store/")
	parts := strings.SplitN(rest, "/", 2)
	collection := parts[0]

	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		out := struct {
			Documents []json.RawMessage `json:"documents"`
		}{Documents: f.docs[collection]}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	case http.MethodPut:
		var doc json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		key := parts[1]
		for i, k := range f.keys[collection] {
			if k == key {
				f.docs[collection][i] = doc
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		f.keys[collection] = append(f.keys[collection], key)
		f.docs[collection] = append(f.docs[collection], doc)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		key := parts[1]
		for i, k := range f.keys[collection] {
			if k == key {
				f.keys[collection] = append(f.keys[collection][:i], f.keys[collection][i+1:]...)
				f.docs[collection] = append(f.docs[collection][:i], f.docs[collection][i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
