package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя auth-cookie с JWT.
const CookieName = "auth_token"

type contextKey string

const userIDKey contextKey = "user_id"

// claims полезной нагрузки auth-токена.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

const tokenTTL = 30 * 24 * time.Hour

// BuildJWT подписывает токен для указанного пользователя.
func BuildJWT(userID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

// SetLoginCookie выписывает JWT и ставит auth-cookie в ответ.
func SetLoginCookie(w http.ResponseWriter, userID, secret string) error {
	signed, err := BuildJWT(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(tokenTTL / time.Second),
	})
	return nil
}

// ClearLoginCookie гасит auth-cookie (logout).
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// ParseUserID проверяет подпись токена и возвращает идентификатор пользователя.
func ParseUserID(tokenString, secret string) (string, bool) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || c.UserID == "" {
		return "", false
	}
	return c.UserID, true
}

// WithAuth достаёт JWT из cookie и кладёт user_id в контекст запроса.
// Невалидный или отсутствующий токен оставляет запрос анонимным —
// решение об отказе принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				if uid, ok := ParseUserID(cookie.Value, secret); ok {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает user_id, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey).(string)
	return uid, ok && uid != ""
}
