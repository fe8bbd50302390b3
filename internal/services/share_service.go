package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maynagashev/playlists/internal/access"
	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/models"
)

// ShareService управляет доступом других пользователей к плейлистам.
type ShareService interface {
	SharePlaylist(ctx context.Context, ownerID, playlistID, targetUserID int64) (*models.SharedPlaylist, error)
	ListSharedUsers(ctx context.Context, userID, playlistID int64) ([]models.UserSummary, error)
}

var _ ShareService = (*shareService)(nil)

type shareService struct {
	repos Repositories
}

// NewShareService создает сервис предоставления доступа.
func NewShareService(repos Repositories) ShareService {
	return &shareService{repos: repos}
}

// SharePlaylist предоставляет пользователю доступ на чтение. Повторное предоставление - ошибка.
func (s *shareService) SharePlaylist(
	ctx context.Context,
	ownerID, playlistID, targetUserID int64,
) (*models.SharedPlaylist, error) {
	if targetUserID <= 0 {
		return nil, fmt.Errorf("%w: не указан пользователь (userId)", ErrValidation)
	}

	playlist, err := loadAuthorized(ctx, s.repos, ownerID, playlistID, access.Share)
	if err != nil {
		return nil, err
	}
	if targetUserID == playlist.CreatorID {
		return nil, ErrShareWithSelf
	}

	if _, err = s.repos.Users.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка поиска пользователя %d: %w", targetUserID, err)
	}

	shared, err := s.repos.Shares.CreateShare(ctx, playlistID, targetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyShared) {
			return nil, ErrAlreadyShared
		}
		return nil, fmt.Errorf("ошибка предоставления доступа к плейлисту %d: %w", playlistID, err)
	}

	log.Printf("[ShareService] Пользователь %d предоставил доступ к плейлисту %d пользователю %d",
		ownerID, playlistID, targetUserID)
	return shared, nil
}

// ListSharedUsers возвращает пользователей, которым предоставлен доступ к плейлисту.
func (s *shareService) ListSharedUsers(ctx context.Context, userID, playlistID int64) ([]models.UserSummary, error) {
	if _, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.ListShares); err != nil {
		return nil, err
	}

	users, err := s.repos.Shares.ListSharedUsers(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка доступа плейлиста %d: %w", playlistID, err)
	}
	return nonNil(users), nil
}
