package service

import (
	"context"
	"errors"
	"time"

	"Cepte/internal/model"
	"Cepte/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — попытка регистрации с уже занятым e-mail.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неверная пара e-mail/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService инкапсулирует регистрацию, вход и профиль пользователя.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт нового пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	return s.repo.CreateUser(ctx, u)
}

// Login проверяет учётные данные и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Profile возвращает пользователя по идентификатору.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// SaveProfile обновляет поля профиля текущего пользователя.
func (s *UserService) SaveProfile(ctx context.Context, userID, fullName, username string, birthDate *time.Time) error {
	return s.repo.UpdateProfile(ctx, userID, fullName, username, birthDate)
}
