package mocks

import (
	"context"

	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/mock"
)

// ShareRepository - мок repository.ShareRepository.
type ShareRepository struct {
	mock.Mock
}

// ShareRepositoryExpecter позволяет задавать ожидания в стиле m.EXPECT().Method(...).
type ShareRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *ShareRepository) EXPECT() *ShareRepositoryExpecter {
	return &ShareRepositoryExpecter{mock: &m.Mock}
}

func (m *ShareRepository) CreateShare(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error) {
	args := m.Called(ctx, playlistID, userID)
	share, _ := args.Get(0).(*models.SharedPlaylist)
	return share, args.Error(1)
}

func (e *ShareRepositoryExpecter) CreateShare(ctx, playlistID, userID interface{}) *mock.Call {
	return e.mock.On("CreateShare", ctx, playlistID, userID)
}

func (m *ShareRepository) GetShare(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error) {
	args := m.Called(ctx, playlistID, userID)
	share, _ := args.Get(0).(*models.SharedPlaylist)
	return share, args.Error(1)
}

func (e *ShareRepositoryExpecter) GetShare(ctx, playlistID, userID interface{}) *mock.Call {
	return e.mock.On("GetShare", ctx, playlistID, userID)
}

func (m *ShareRepository) ListSharedUsers(ctx context.Context, playlistID int64) ([]models.UserSummary, error) {
	args := m.Called(ctx, playlistID)
	users, _ := args.Get(0).([]models.UserSummary)
	return users, args.Error(1)
}

func (e *ShareRepositoryExpecter) ListSharedUsers(ctx, playlistID interface{}) *mock.Call {
	return e.mock.On("ListSharedUsers", ctx, playlistID)
}

func (m *ShareRepository) ListPlaylistsSharedWith(ctx context.Context, userID int64) ([]models.Playlist, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Playlist)
	return list, args.Error(1)
}

func (e *ShareRepositoryExpecter) ListPlaylistsSharedWith(ctx, userID interface{}) *mock.Call {
	return e.mock.On("ListPlaylistsSharedWith", ctx, userID)
}
