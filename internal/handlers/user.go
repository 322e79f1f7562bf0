package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"Cepte/internal/config"
	"Cepte/internal/middleware"
	"Cepte/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserHandler обрабатывает регистрацию, вход/выход и профиль.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID string `json:"user_id"`
}

// profileDTO — профиль в формате клиента.
type profileDTO struct {
	UserID           string `json:"userId"`
	FullName         string `json:"fullName"`
	Username         string `json:"username"`
	BirthDate        string `json:"birthDate,omitempty"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registrationDate"`
}

// Register создаёт пользователя и сразу выдаёт auth-cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	u, err := h.UserService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		case errors.Is(err, service.ErrInvalidCredentials):
			http.Error(w, "email and password are required", http.StatusBadRequest)
		default:
			h.Logger.Errorw("Register: service error", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to issue token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{UserID: u.ID})
}

// Login аутентифицирует пользователя и выдаёт auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	u, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to issue token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{UserID: u.ID})
}

// Logout гасит auth-cookie. Серверного состояния сессии нет.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusOK)
}

// GetProfile возвращает профиль текущего пользователя.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	u, err := h.UserService.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("GetProfile: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	dto := profileDTO{
		UserID:           u.ID,
		FullName:         u.FullName,
		Username:         u.Username,
		Email:            u.Email,
		RegistrationDate: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.BirthDate != nil {
		dto.BirthDate = u.BirthDate.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, dto)
}

type putProfileRequest struct {
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	BirthDate string `json:"birthDate,omitempty"`
}

// PutProfile обновляет поля профиля текущего пользователя.
func (h *UserHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req putProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	var birthDate *time.Time
	if req.BirthDate != "" {
		t, err := time.Parse(time.RFC3339, req.BirthDate)
		if err != nil {
			http.Error(w, "invalid birthDate", http.StatusBadRequest)
			return
		}
		birthDate = &t
	}
	if err := h.UserService.SaveProfile(r.Context(), userID, req.FullName, req.Username, birthDate); err != nil {
		h.Logger.Errorw("PutProfile: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
