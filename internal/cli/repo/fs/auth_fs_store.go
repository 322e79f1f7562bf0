package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// AuthFSStore — файловое хранилище auth-токена и идентификатора
// пользователя между запусками CLI.
type AuthFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "Cepte")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

func userIDPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "user_id"), nil
}

func trimTrailing(b []byte) []byte {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}

// SaveToken сохраняет auth-токен в файл.
func (AuthFSStore) SaveToken(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// LoadToken читает auth-токен из файла.
func (AuthFSStore) LoadToken() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// SaveUserID сохраняет идентификатор пользователя в файл.
func (AuthFSStore) SaveUserID(id string) error {
	if id == "" {
		return errors.New("empty user id")
	}
	p, err := userIDPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(id), 0o600)
}

// LoadUserID читает идентификатор пользователя из файла.
func (AuthFSStore) LoadUserID() (string, error) {
	p, err := userIDPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", errors.New("no stored user id")
	}
	return string(b), nil
}

// Clear удаляет сохранённые токен и идентификатор (logout).
func (AuthFSStore) Clear() error {
	var firstErr error
	for _, fn := range []func() (string, error){tokenPath, userIDPath} {
		p, err := fn()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
