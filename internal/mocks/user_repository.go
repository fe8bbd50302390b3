package mocks

import (
	"context"

	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/mock"
)

// UserRepository - мок repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

// UserRepositoryExpecter позволяет задавать ожидания в стиле m.EXPECT().Method(...).
type UserRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *UserRepository) EXPECT() *UserRepositoryExpecter {
	return &UserRepositoryExpecter{mock: &m.Mock}
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (e *UserRepositoryExpecter) CreateUser(ctx, user interface{}) *mock.Call {
	return e.mock.On("CreateUser", ctx, user)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (e *UserRepositoryExpecter) GetUserByEmail(ctx, email interface{}) *mock.Call {
	return e.mock.On("GetUserByEmail", ctx, email)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (e *UserRepositoryExpecter) GetUserByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetUserByID", ctx, id)
}
