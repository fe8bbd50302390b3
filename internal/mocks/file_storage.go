package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// FileStorage - мок storage.FileStorage.
type FileStorage struct {
	mock.Mock
}

// FileStorageExpecter позволяет задавать ожидания в стиле m.EXPECT().Method(...).
type FileStorageExpecter struct {
	mock *mock.Mock
}

func (m *FileStorage) EXPECT() *FileStorageExpecter {
	return &FileStorageExpecter{mock: &m.Mock}
}

func (m *FileStorage) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	return m.Called(ctx, objectKey, reader, size, contentType).Error(0)
}

func (e *FileStorageExpecter) UploadFile(ctx, objectKey, reader, size, contentType interface{}) *mock.Call {
	return e.mock.On("UploadFile", ctx, objectKey, reader, size, contentType)
}

func (m *FileStorage) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	args := m.Called(ctx, objectKey)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (e *FileStorageExpecter) DownloadFile(ctx, objectKey interface{}) *mock.Call {
	return e.mock.On("DownloadFile", ctx, objectKey)
}

func (m *FileStorage) DeleteFile(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}

func (e *FileStorageExpecter) DeleteFile(ctx, objectKey interface{}) *mock.Call {
	return e.mock.On("DeleteFile", ctx, objectKey)
}
