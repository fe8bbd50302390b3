package tui

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/maynagashev/playlists/models"
)

// mockClient - мок api.Client для тестов TUI.
type mockClient struct {
	mock.Mock
}

func (m *mockClient) Register(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClient) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockClient) SetAuthToken(token string) {
	m.Called(token)
}

func (m *mockClient) Me(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *mockClient) CreatePlaylist(ctx context.Context, req models.CreatePlaylistRequest) (*models.Playlist, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *mockClient) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Playlist)
	return p, args.Error(1)
}

func (m *mockClient) ListSharedWithMe(ctx context.Context) ([]models.Playlist, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Playlist)
	return p, args.Error(1)
}

func (m *mockClient) GetPlaylist(ctx context.Context, id int64) (*models.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.PlaylistDetail)
	return d, args.Error(1)
}

func (m *mockClient) UpdatePlaylist(
	ctx context.Context,
	id int64,
	req models.UpdatePlaylistRequest,
) (*models.Playlist, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *mockClient) DeletePlaylist(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClient) UploadCover(
	ctx context.Context,
	id int64,
	filename string,
	data io.Reader,
) (*models.Playlist, error) {
	args := m.Called(ctx, id, filename, data)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *mockClient) AddSong(ctx context.Context, playlistID int64, req models.AddSongRequest) (*models.Song, error) {
	args := m.Called(ctx, playlistID, req)
	s, _ := args.Get(0).(*models.Song)
	return s, args.Error(1)
}

func (m *mockClient) ListSongs(ctx context.Context, playlistID int64) ([]models.Song, error) {
	args := m.Called(ctx, playlistID)
	s, _ := args.Get(0).([]models.Song)
	return s, args.Error(1)
}

func (m *mockClient) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	args := m.Called(ctx, name, artist)
	s, _ := args.Get(0).([]models.Song)
	return s, args.Error(1)
}

func (m *mockClient) SharePlaylist(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error) {
	args := m.Called(ctx, playlistID, userID)
	s, _ := args.Get(0).(*models.SharedPlaylist)
	return s, args.Error(1)
}

func (m *mockClient) ListSharedUsers(ctx context.Context, playlistID int64) ([]string, error) {
	args := m.Called(ctx, playlistID)
	s, _ := args.Get(0).([]string)
	return s, args.Error(1)
}
