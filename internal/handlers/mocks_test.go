package handlers_test

import (
	"context"
	"io"
	"net/http"

	"github.com/maynagashev/playlists/internal/middleware"
	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	args := m.Called(ctx, user)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

// --- Mock PlaylistService --- //

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) CreatePlaylist(
	ctx context.Context,
	userID int64,
	req models.CreatePlaylistRequest,
) (*models.Playlist, error) {
	args := m.Called(ctx, userID, req)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *MockPlaylistService) ListPlaylists(ctx context.Context, userID int64) ([]models.Playlist, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Playlist)
	return list, args.Error(1)
}

func (m *MockPlaylistService) ListSharedWithMe(ctx context.Context, userID int64) ([]models.Playlist, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Playlist)
	return list, args.Error(1)
}

func (m *MockPlaylistService) GetPlaylist(ctx context.Context, userID, playlistID int64) (*models.PlaylistDetail, error) {
	args := m.Called(ctx, userID, playlistID)
	d, _ := args.Get(0).(*models.PlaylistDetail)
	return d, args.Error(1)
}

func (m *MockPlaylistService) UpdatePlaylist(
	ctx context.Context,
	userID, playlistID int64,
	req models.UpdatePlaylistRequest,
) (*models.Playlist, error) {
	args := m.Called(ctx, userID, playlistID, req)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *MockPlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID int64) error {
	return m.Called(ctx, userID, playlistID).Error(0)
}

// --- Mock SongService --- //

type MockSongService struct {
	mock.Mock
}

func (m *MockSongService) AddSong(
	ctx context.Context,
	userID, playlistID int64,
	req models.AddSongRequest,
) (*models.Song, error) {
	args := m.Called(ctx, userID, playlistID, req)
	s, _ := args.Get(0).(*models.Song)
	return s, args.Error(1)
}

func (m *MockSongService) ListSongs(ctx context.Context, userID, playlistID int64) ([]models.Song, error) {
	args := m.Called(ctx, userID, playlistID)
	songs, _ := args.Get(0).([]models.Song)
	return songs, args.Error(1)
}

func (m *MockSongService) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	args := m.Called(ctx, name, artist)
	songs, _ := args.Get(0).([]models.Song)
	return songs, args.Error(1)
}

// --- Mock ShareService --- //

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) SharePlaylist(
	ctx context.Context,
	ownerID, playlistID, targetUserID int64,
) (*models.SharedPlaylist, error) {
	args := m.Called(ctx, ownerID, playlistID, targetUserID)
	s, _ := args.Get(0).(*models.SharedPlaylist)
	return s, args.Error(1)
}

func (m *MockShareService) ListSharedUsers(ctx context.Context, userID, playlistID int64) ([]models.UserSummary, error) {
	args := m.Called(ctx, userID, playlistID)
	users, _ := args.Get(0).([]models.UserSummary)
	return users, args.Error(1)
}

// --- Mock CoverService --- //

type MockCoverService struct {
	mock.Mock
}

func (m *MockCoverService) UploadCover(
	ctx context.Context,
	userID, playlistID int64,
	file io.Reader,
) (*models.Playlist, error) {
	args := m.Called(ctx, userID, playlistID, file)
	p, _ := args.Get(0).(*models.Playlist)
	return p, args.Error(1)
}

func (m *MockCoverService) OpenCover(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.String(1), args.Error(2)
}

func (m *MockCoverService) CoverURL(key string) string {
	return m.Called(key).String(0)
}

// withUser имитирует middleware.Authenticator: кладет пользователя в контекст запроса.
func withUser(user *models.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
