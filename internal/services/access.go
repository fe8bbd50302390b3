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

// Repositories объединяет хранилища, с которыми работают сервисы плейлистов.
type Repositories struct {
	Users     repository.UserRepository
	Playlists repository.PlaylistRepository
	Shares    repository.ShareRepository
	Songs     repository.SongRepository
}

// loadAuthorized загружает плейлист и проверяет право пользователя на операцию.
// Отсутствие плейлиста проверяется до прав доступа: несуществующий плейлист всегда дает ErrPlaylistNotFound.
func loadAuthorized(
	ctx context.Context,
	repos Repositories,
	requesterID, playlistID int64,
	op access.Operation,
) (*models.Playlist, error) {
	playlist, err := repos.Playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("ошибка получения плейлиста %d: %w", playlistID, err)
	}

	resource := access.Resource{OwnerID: playlist.CreatorID}
	if !resource.IsOwner(requesterID) {
		_, err = repos.Shares.GetShare(ctx, playlistID, requesterID)
		switch {
		case err == nil:
			resource.SharedWith = []int64{requesterID}
		case errors.Is(err, repository.ErrShareNotFound):
		default:
			return nil, fmt.Errorf("ошибка проверки доступа к плейлисту %d: %w", playlistID, err)
		}
	}

	if err = access.Authorize(requesterID, resource, op); err != nil {
		log.Printf("[Access] Пользователю %d запрещена операция '%s' над плейлистом %d", requesterID, op, playlistID)
		return nil, err
	}
	return playlist, nil
}
