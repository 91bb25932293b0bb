package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDContextKey = contextKey("user_id")

// Claims — полезная нагрузка bearer-токена. Выпуск токенов — зона
// ответственности identity-сервиса, здесь только проверка.
type Claims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

var errUnexpectedSigningMethod = errors.New("unexpected token signing method")

// Middleware проверяет bearer-токен на каждом запросе и кладёт
// идентификатор пользователя в контекст. Без валидного токена — 401.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, "authorization header required")
				return
			}

			userID, err := validateToken(header, secret)
			if err != nil {
				writeUnauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладёт идентификатор пользователя в контекст запроса.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// FromContext возвращает идентификатор аутентифицированного пользователя
// или пустую строку, если middleware не отработал.
func FromContext(r *http.Request) string {
	userID, ok := r.Context().Value(userIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func validateToken(header string, secret []byte) (string, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.UserID, nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
