package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"Cepte/internal/middleware"
	"Cepte/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StoreHandler — CRUD по документам в коллекциях текущего пользователя.
type StoreHandler struct {
	DocService *service.DocumentService
	Logger     *zap.SugaredLogger
}

func NewStoreHandler(docService *service.DocumentService, logger *zap.SugaredLogger) *StoreHandler {
	return &StoreHandler{DocService: docService, Logger: logger}
}

const maxDocumentBytes = 256 * 1024

// listResponse — ответ List.
type listResponse struct {
	Documents []json.RawMessage `json:"documents"`
}

// Put целиком перезаписывает документ по ключу.
func (h *StoreHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	collection := chi.URLParam(r, "collection")
	docID := chi.URLParam(r, "docID")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if err := h.DocService.Put(r.Context(), userID, collection, docID, body); err != nil {
		if errors.Is(err, service.ErrBadCollection) || errors.Is(err, service.ErrBadDocument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Put: service error", "user_id", userID, "collection", collection, "doc_id", docID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete удаляет документ; отсутствие ключа — тоже 200.
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	collection := chi.URLParam(r, "collection")
	docID := chi.URLParam(r, "docID")

	if err := h.DocService.Remove(r.Context(), userID, collection, docID); err != nil {
		if errors.Is(err, service.ErrBadCollection) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Delete: service error", "user_id", userID, "collection", collection, "doc_id", docID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// List возвращает все документы коллекции.
// Параметры: ?order_by=<field>&desc=1 — серверная сортировка по полю JSON.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	collection := chi.URLParam(r, "collection")
	orderBy := r.URL.Query().Get("order_by")
	desc := r.URL.Query().Get("desc") == "1" || r.URL.Query().Get("desc") == "true"

	docs, err := h.DocService.List(r.Context(), userID, collection, orderBy, desc)
	if err != nil {
		if errors.Is(err, service.ErrBadCollection) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("List: service error", "user_id", userID, "collection", collection, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, listResponse{Documents: docs})
}
