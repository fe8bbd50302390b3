package mocks

import (
	"context"

	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/mock"
)

// PlaylistRepository - мок repository.PlaylistRepository.
type PlaylistRepository struct {
	mock.Mock
}

// PlaylistRepositoryExpecter позволяет задавать ожидания в стиле m.EXPECT().Method(...).
type PlaylistRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *PlaylistRepository) EXPECT() *PlaylistRepositoryExpecter {
	return &PlaylistRepositoryExpecter{mock: &m.Mock}
}

func playlistResult(args mock.Arguments) (*models.Playlist, error) {
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *PlaylistRepository) CreatePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	return playlistResult(m.Called(ctx, playlist))
}

func (e *PlaylistRepositoryExpecter) CreatePlaylist(ctx, playlist interface{}) *mock.Call {
	return e.mock.On("CreatePlaylist", ctx, playlist)
}

func (m *PlaylistRepository) GetPlaylistByID(ctx context.Context, id int64) (*models.Playlist, error) {
	return playlistResult(m.Called(ctx, id))
}

func (e *PlaylistRepositoryExpecter) GetPlaylistByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetPlaylistByID", ctx, id)
}

func (m *PlaylistRepository) ListPlaylistsByCreator(ctx context.Context, creatorID int64) ([]models.Playlist, error) {
	args := m.Called(ctx, creatorID)
	list, _ := args.Get(0).([]models.Playlist)
	return list, args.Error(1)
}

func (e *PlaylistRepositoryExpecter) ListPlaylistsByCreator(ctx, creatorID interface{}) *mock.Call {
	return e.mock.On("ListPlaylistsByCreator", ctx, creatorID)
}

func (m *PlaylistRepository) CountSecretPlaylists(ctx context.Context, creatorID int64) (int, error) {
	args := m.Called(ctx, creatorID)
	return args.Int(0), args.Error(1)
}

func (e *PlaylistRepositoryExpecter) CountSecretPlaylists(ctx, creatorID interface{}) *mock.Call {
	return e.mock.On("CountSecretPlaylists", ctx, creatorID)
}

func (m *PlaylistRepository) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	return playlistResult(m.Called(ctx, playlist))
}

func (e *PlaylistRepositoryExpecter) UpdatePlaylist(ctx, playlist interface{}) *mock.Call {
	return e.mock.On("UpdatePlaylist", ctx, playlist)
}

func (m *PlaylistRepository) SetCover(ctx context.Context, id int64, coverKey string) (*models.Playlist, error) {
	return playlistResult(m.Called(ctx, id, coverKey))
}

func (e *PlaylistRepositoryExpecter) SetCover(ctx, id, coverKey interface{}) *mock.Call {
	return e.mock.On("SetCover", ctx, id, coverKey)
}

func (m *PlaylistRepository) DeletePlaylist(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (e *PlaylistRepositoryExpecter) DeletePlaylist(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeletePlaylist", ctx, id)
}
