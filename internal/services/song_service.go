package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/maynagashev/playlists/internal/access"
	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/models"
)

// SongService определяет операции с песнями.
type SongService interface {
	AddSong(ctx context.Context, userID, playlistID int64, req models.AddSongRequest) (*models.Song, error)
	ListSongs(ctx context.Context, userID, playlistID int64) ([]models.Song, error)
	SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error)
}

var _ SongService = (*songService)(nil)

type songService struct {
	repos Repositories
}

// NewSongService создает сервис песен.
func NewSongService(repos Repositories) SongService {
	return &songService{repos: repos}
}

// AddSong добавляет песню в плейлист. Песня с той же парой (name, artist) переиспользуется.
func (s *songService) AddSong(
	ctx context.Context,
	userID, playlistID int64,
	req models.AddSongRequest,
) (*models.Song, error) {
	name := strings.TrimSpace(req.Name)
	artist := strings.TrimSpace(req.Artist)
	if name == "" || artist == "" {
		return nil, fmt.Errorf("%w: название и исполнитель обязательны", ErrValidation)
	}

	if _, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.AddSong); err != nil {
		return nil, err
	}

	song, err := s.repos.Songs.FindOrCreateSong(ctx, &models.Song{
		Name:   name,
		Artist: artist,
		URL:    strings.TrimSpace(req.URL),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения песни: %w", err)
	}

	if err = s.repos.Songs.AddSongToPlaylist(ctx, playlistID, song.ID); err != nil {
		if errors.Is(err, repository.ErrSongAlreadyInPlaylist) {
			return nil, ErrSongAlreadyInPlaylist
		}
		return nil, fmt.Errorf("ошибка добавления песни %d в плейлист %d: %w", song.ID, playlistID, err)
	}

	log.Printf("[SongService] Песня %d добавлена в плейлист %d пользователем %d", song.ID, playlistID, userID)
	return song, nil
}

// ListSongs возвращает песни плейлиста.
func (s *songService) ListSongs(ctx context.Context, userID, playlistID int64) ([]models.Song, error) {
	if _, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.ListSongs); err != nil {
		return nil, err
	}

	songs, err := s.repos.Songs.ListSongsByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения песен плейлиста %d: %w", playlistID, err)
	}
	return nonNil(songs), nil
}

// SearchSongs ищет песни по подстроке названия и/или исполнителя без учета регистра.
func (s *songService) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	songs, err := s.repos.Songs.SearchSongs(ctx, strings.TrimSpace(name), strings.TrimSpace(artist))
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска песен: %w", err)
	}
	return nonNil(songs), nil
}
