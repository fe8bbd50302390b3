package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

// Тип для ключа контекста.
type contextKey string

// UserKey - ключ для хранения аутентифицированного пользователя в контексте.
const UserKey contextKey = "user"

// unauthorizedMessage одинаково для всех причин отказа, причина пишется только в лог.
const unauthorizedMessage = "Требуется аутентификация"

// ErrTokenMissing - заголовок Authorization отсутствует или имеет неверный формат.
var ErrTokenMissing = errors.New("отсутствует токен доступа")

// TokenVerifier проверяет токен доступа.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// UserFinder загружает пользователя по ID.
type UserFinder interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Authenticator проверяет Bearer токен, загружает пользователя и кладет его в контекст запроса.
func Authenticator(tokens TokenVerifier, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Printf("[AuthMiddleware] %v: %s %s", err, r.Method, r.URL.Path)
				writeUnauthorized(w)
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				log.Printf("[AuthMiddleware] Ошибка проверки токена: %v", err)
				writeUnauthorized(w)
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					log.Printf("[AuthMiddleware] Пользователь %d из токена не найден", claims.UserID)
					writeUnauthorized(w)
					return
				}
				log.Printf("[AuthMiddleware] Ошибка загрузки пользователя %d: %v", claims.UserID, err)
				writeJSONError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из заголовка вида "Bearer <token>".
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrTokenMissing
	}
	return parts[1], nil
}

// UserFromContext извлекает пользователя, добавленного Authenticator.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok && user != nil
}

// UserIDFromContext извлекает ID аутентифицированного пользователя.
// Возвращает ID пользователя и true, если пользователь найден, иначе 0 и false.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return 0, false
	}
	return user.ID, true
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSONError(w, http.StatusUnauthorized, unauthorizedMessage)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.MessageResponse{Message: message}); err != nil {
		log.Printf("[AuthMiddleware] Ошибка кодирования ответа: %v", err)
	}
}
