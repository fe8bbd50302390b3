// Package storage хранит файлы обложек плейлистов: на локальном диске или в MinIO.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

// FileStorage определяет интерфейс для взаимодействия с файловым хранилищем.
type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, objectKey string) error
}

// Кастомные ошибки хранилища.
var (
	ErrObjectNotFound   = errors.New("объект не найден в хранилище")
	ErrInvalidObjectKey = errors.New("недопустимый ключ объекта")
)

// validateObjectKey допускает только плоские ключи без разделителей пути и скрытых имен.
func validateObjectKey(objectKey string) error {
	if objectKey == "" || strings.ContainsAny(objectKey, `/\`) || strings.HasPrefix(objectKey, ".") {
		return ErrInvalidObjectKey
	}
	return nil
}
