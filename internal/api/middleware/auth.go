package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
)

const (
	RoleAdmin = "admin"

	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgForbidden    = "доступ разрешен только администраторам"
)

var (
	ErrMissingToken = errors.New("middleware: missing bearer token")
	ErrInvalidToken = errors.New("middleware: invalid token")
)

type contextKey string

const userIDKey contextKey = "user_id"

// Claims полезная нагрузка токена; токены выпускает внешний сервис авторизации
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer JWT (HS256) и требует указанную роль
// 401 - токена нет или он недействителен, 403 - роль не совпадает
func Auth(secret string, role string, log Logger) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseToken(key, r.Header.Get("Authorization"))
			if err != nil {
				log.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, ErrMissingToken) {
					handlers.RespondUnauthorized(w, msgMissingToken)
				} else {
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			if claims.Role != role {
				log.Warn("%s %s - Forbidden: subject=%s, role=%s", r.Method, r.URL.Path, claims.Subject, claims.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

// ParseToken извлекает и проверяет токен из значения заголовка Authorization
func ParseToken(key []byte, header string) (*Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// WithUserID кладет subject токена в контекст
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID возвращает subject токена из контекста
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
