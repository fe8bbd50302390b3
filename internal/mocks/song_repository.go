package mocks

import (
	"context"

	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/mock"
)

// SongRepository - мок repository.SongRepository.
type SongRepository struct {
	mock.Mock
}

// SongRepositoryExpecter позволяет задавать ожидания в стиле m.EXPECT().Method(...).
type SongRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *SongRepository) EXPECT() *SongRepositoryExpecter {
	return &SongRepositoryExpecter{mock: &m.Mock}
}

func (m *SongRepository) FindOrCreateSong(ctx context.Context, song *models.Song) (*models.Song, error) {
	args := m.Called(ctx, song)
	s, _ := args.Get(0).(*models.Song)
	return s, args.Error(1)
}

func (e *SongRepositoryExpecter) FindOrCreateSong(ctx, song interface{}) *mock.Call {
	return e.mock.On("FindOrCreateSong", ctx, song)
}

func (m *SongRepository) AddSongToPlaylist(ctx context.Context, playlistID, songID int64) error {
	return m.Called(ctx, playlistID, songID).Error(0)
}

func (e *SongRepositoryExpecter) AddSongToPlaylist(ctx, playlistID, songID interface{}) *mock.Call {
	return e.mock.On("AddSongToPlaylist", ctx, playlistID, songID)
}

func (m *SongRepository) ListSongsByPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error) {
	args := m.Called(ctx, playlistID)
	songs, _ := args.Get(0).([]models.Song)
	return songs, args.Error(1)
}

func (e *SongRepositoryExpecter) ListSongsByPlaylist(ctx, playlistID interface{}) *mock.Call {
	return e.mock.On("ListSongsByPlaylist", ctx, playlistID)
}

func (m *SongRepository) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	args := m.Called(ctx, name, artist)
	songs, _ := args.Get(0).([]models.Song)
	return songs, args.Error(1)
}

func (e *SongRepositoryExpecter) SearchSongs(ctx, name, artist interface{}) *mock.Call {
	return e.mock.On("SearchSongs", ctx, name, artist)
}
