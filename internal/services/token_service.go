package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTTL    = time.Hour * 24 // Время жизни токена - 24 часа
	tokenIssuer = "playlists-server"
)

// Claims - данные пользователя, извлеченные из проверенного токена.
type Claims struct {
	UserID int64
	Email  string
}

// TokenService выпускает и проверяет подписанные JWT токены доступа.
type TokenService interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*Claims, error)
}

// jwtClaims - полезная нагрузка JWT.
type jwtClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var _ TokenService = (*tokenService)(nil)

type tokenService struct {
	secret []byte
	now    func() time.Time
}

// TokenOption настраивает TokenService.
type TokenOption func(*tokenService)

// WithClock подменяет источник текущего времени (используется в тестах).
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService создает сервис токенов. Пустой секрет - ошибка конфигурации.
func NewTokenService(secret string, opts ...TokenOption) (TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	s := &tokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue создает и подписывает токен для пользователя.
func (s *tokenService) Issue(userID int64, email string) (string, error) {
	now := s.now()
	claims := jwtClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает его данные.
func (s *tokenService) Verify(token string) (*Claims, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			// Неверная подпись, чужой секрет, неожиданный алгоритм или невалидные claims
			return nil, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		}
	}

	return &Claims{UserID: claims.UserID, Email: claims.Email}, nil
}

// Ошибки сервиса токенов.
var (
	ErrMissingSecret         = errors.New("не задан секрет для подписи токенов (JWT_SECRET)")
	ErrTokenExpired          = errors.New("срок действия токена истек")
	ErrTokenInvalidSignature = errors.New("неверная подпись токена")
	ErrTokenMalformed        = errors.New("токен поврежден")
)
