package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	Register(ctx context.Context, email, password string) (int64, error) // Возвращает ID нового пользователя
	Login(ctx context.Context, email, password string) (string, error)   // Возвращает JWT токен или ошибку
	GetProfile(ctx context.Context, user *models.User) (*models.Profile, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo     repository.UserRepository
	playlistRepo repository.PlaylistRepository
	shareRepo    repository.ShareRepository
	tokens       TokenService
	hashCost     int
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(
	userRepo repository.UserRepository,
	playlistRepo repository.PlaylistRepository,
	shareRepo repository.ShareRepository,
	tokens TokenService,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		playlistRepo: playlistRepo,
		shareRepo:    shareRepo,
		tokens:       tokens,
		hashCost:     bcrypt.DefaultCost,
	}
}

// Register регистрирует нового пользователя.
func (s *authService) Register(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return 0, fmt.Errorf("%w: email и пароль обязательны", ErrValidation)
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", email, err)
		return 0, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым email: %s", email)
			return 0, ErrEmailTaken
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", email, err)
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован (ID: %d)", email, userID)
	return userID, nil
}

// Login аутентифицирует пользователя и возвращает JWT токен.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email и пароль обязательны", ErrValidation)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %s", email)
			return "", ErrUnknownEmail
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", email, err)
		return "", fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", email)
		return "", ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", email, err)
		return "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", email)
	return token, nil
}

// GetProfile собирает профиль пользователя: собственные плейлисты и плейлисты, доступные ему.
func (s *authService) GetProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	owned, err := s.playlistRepo.ListPlaylistsByCreator(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения плейлистов пользователя %d: %w", user.ID, err)
	}
	shared, err := s.shareRepo.ListPlaylistsSharedWith(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения доступных плейлистов пользователя %d: %w", user.ID, err)
	}

	return &models.Profile{
		ID:              user.ID,
		Email:           user.Email,
		Playlists:       nonNil(owned),
		SharedPlaylists: nonNil(shared),
	}, nil
}

// nonNil заменяет nil срез пустым, чтобы в JSON попадал [] вместо null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
