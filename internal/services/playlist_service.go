package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/maynagashev/playlists/internal/access"
	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/internal/storage"
	"github.com/maynagashev/playlists/models"
)

// PlaylistService определяет операции над плейлистами.
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, userID int64, req models.CreatePlaylistRequest) (*models.Playlist, error)
	ListPlaylists(ctx context.Context, userID int64) ([]models.Playlist, error)
	ListSharedWithMe(ctx context.Context, userID int64) ([]models.Playlist, error)
	GetPlaylist(ctx context.Context, userID, playlistID int64) (*models.PlaylistDetail, error)
	UpdatePlaylist(
		ctx context.Context,
		userID, playlistID int64,
		req models.UpdatePlaylistRequest,
	) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, userID, playlistID int64) error
}

var _ PlaylistService = (*playlistService)(nil)

type playlistService struct {
	repos         Repositories
	files         storage.FileStorage
	publicBaseURL string
}

// NewPlaylistService создает сервис плейлистов.
// files используется для удаления обложки вместе с плейлистом, publicBaseURL - для ссылок на обложки.
func NewPlaylistService(repos Repositories, files storage.FileStorage, publicBaseURL string) PlaylistService {
	return &playlistService{repos: repos, files: files, publicBaseURL: publicBaseURL}
}

// CreatePlaylist создает плейлист, соблюдая лимит секретных плейлистов.
func (s *playlistService) CreatePlaylist(
	ctx context.Context,
	userID int64,
	req models.CreatePlaylistRequest,
) (*models.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: название и описание обязательны", ErrValidation)
	}

	if req.IsSecret {
		if err := s.checkSecretQuota(ctx, userID); err != nil {
			return nil, err
		}
	}

	created, err := s.repos.Playlists.CreatePlaylist(ctx, &models.Playlist{
		Name:        name,
		Description: description,
		IsSecret:    req.IsSecret,
		CreatorID:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания плейлиста: %w", err)
	}

	log.Printf("[PlaylistService] Пользователь %d создал плейлист %d (секретный: %t)", userID, created.ID, created.IsSecret)
	return created, nil
}

// ListPlaylists возвращает плейлисты, созданные пользователем.
func (s *playlistService) ListPlaylists(ctx context.Context, userID int64) ([]models.Playlist, error) {
	playlists, err := s.repos.Playlists.ListPlaylistsByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения плейлистов пользователя %d: %w", userID, err)
	}
	return nonNil(playlists), nil
}

// ListSharedWithMe возвращает плейлисты, к которым пользователю предоставлен доступ.
func (s *playlistService) ListSharedWithMe(ctx context.Context, userID int64) ([]models.Playlist, error) {
	playlists, err := s.repos.Shares.ListPlaylistsSharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения доступных плейлистов пользователя %d: %w", userID, err)
	}
	return nonNil(playlists), nil
}

// GetPlaylist возвращает плейлист с создателем, песнями и списком пользователей с доступом.
func (s *playlistService) GetPlaylist(ctx context.Context, userID, playlistID int64) (*models.PlaylistDetail, error) {
	playlist, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.Read)
	if err != nil {
		return nil, err
	}

	creator, err := s.repos.Users.GetUserByID(ctx, playlist.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения создателя плейлиста %d: %w", playlistID, err)
	}
	songs, err := s.repos.Songs.ListSongsByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения песен плейлиста %d: %w", playlistID, err)
	}
	sharedWith, err := s.repos.Shares.ListSharedUsers(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка доступа плейлиста %d: %w", playlistID, err)
	}

	detail := &models.PlaylistDetail{
		Playlist:   *playlist,
		Creator:    models.UserSummary{ID: creator.ID, Email: creator.Email},
		Songs:      nonNil(songs),
		SharedWith: nonNil(sharedWith),
	}
	if playlist.CoverKey != nil {
		detail.CoverImageURL = CoverURL(s.publicBaseURL, *playlist.CoverKey)
	}
	return detail, nil
}

// UpdatePlaylist частично обновляет плейлист. Лимит секретных плейлистов проверяется,
// если плейлист становится секретным.
func (s *playlistService) UpdatePlaylist(
	ctx context.Context,
	userID, playlistID int64,
	req models.UpdatePlaylistRequest,
) (*models.Playlist, error) {
	playlist, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.Update)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: название не может быть пустым", ErrValidation)
		}
		playlist.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: описание не может быть пустым", ErrValidation)
		}
		playlist.Description = description
	}
	if req.IsSecret != nil {
		if *req.IsSecret && !playlist.IsSecret {
			if err = s.checkSecretQuota(ctx, userID); err != nil {
				return nil, err
			}
		}
		playlist.IsSecret = *req.IsSecret
	}

	updated, err := s.repos.Playlists.UpdatePlaylist(ctx, playlist)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("ошибка обновления плейлиста %d: %w", playlistID, err)
	}

	log.Printf("[PlaylistService] Плейлист %d обновлен пользователем %d", playlistID, userID)
	return updated, nil
}

// DeletePlaylist удаляет плейлист. Записи о доступе и связи с песнями удаляются каскадно,
// файл обложки удаляется без влияния на результат операции.
func (s *playlistService) DeletePlaylist(ctx context.Context, userID, playlistID int64) error {
	playlist, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.Delete)
	if err != nil {
		return err
	}

	if err = s.repos.Playlists.DeletePlaylist(ctx, playlistID); err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return ErrPlaylistNotFound
		}
		return fmt.Errorf("ошибка удаления плейлиста %d: %w", playlistID, err)
	}

	if playlist.CoverKey != nil && s.files != nil {
		if err = s.files.DeleteFile(ctx, *playlist.CoverKey); err != nil {
			log.Printf("[PlaylistService] Не удалось удалить обложку '%s' плейлиста %d: %v",
				*playlist.CoverKey, playlistID, err)
		}
	}

	log.Printf("[PlaylistService] Плейлист %d удален пользователем %d", playlistID, userID)
	return nil
}

func (s *playlistService) checkSecretQuota(ctx context.Context, userID int64) error {
	count, err := s.repos.Playlists.CountSecretPlaylists(ctx, userID)
	if err != nil {
		return fmt.Errorf("ошибка подсчета секретных плейлистов пользователя %d: %w", userID, err)
	}
	if err = access.CheckSecretQuota(true, count); err != nil {
		log.Printf("[PlaylistService] Пользователь %d достиг лимита секретных плейлистов (%d)", userID, count)
		return err
	}
	return nil
}
