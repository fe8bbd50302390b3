package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	dirPerm        = 0o755
	filePerm       = 0o644
	lockRetryDelay = 50 * time.Millisecond
	lockSuffix     = ".lock"
)

var _ FileStorage = (*LocalStorage)(nil)

// LocalStorage реализует FileStorage поверх каталога на локальном диске.
// Запись и чтение одного и того же объекта разделяются файловой блокировкой.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage создает хранилище в каталоге baseDir, создавая его при необходимости.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, dirPerm); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога хранилища '%s': %w", baseDir, err)
	}
	log.Printf("Локальное хранилище файлов инициализировано в каталоге '%s'.", baseDir)
	return &LocalStorage{baseDir: baseDir}, nil
}

// UploadFile записывает файл на диск. Файл сначала пишется во временный файл и затем переименовывается,
// поэтому читатели никогда не видят частично записанный объект.
func (s *LocalStorage) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	_ string,
) error {
	path, err := s.objectPath(objectKey)
	if err != nil {
		return err
	}

	lock := flock.New(path + lockSuffix)
	if _, err = lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("ошибка блокировки файла '%s': %w", objectKey, err)
	}
	defer s.release(lock)

	tmp, err := os.CreateTemp(s.baseDir, ".upload-*")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer func() {
		// После успешного переименования файла уже нет, ошибку игнорируем
		_ = os.Remove(tmp.Name())
	}()

	written, err := io.Copy(tmp, reader)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("ошибка записи файла '%s': %w", objectKey, err)
	}
	if size >= 0 && written != size {
		return fmt.Errorf("ошибка записи файла '%s': записано %d байт из %d", objectKey, written, size)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("ошибка установки прав на файл '%s': %w", objectKey, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ошибка сохранения файла '%s': %w", objectKey, err)
	}

	log.Printf("[LocalStorage] Файл '%s' сохранен, размер: %d", objectKey, written)
	return nil
}

// DownloadFile открывает файл на чтение. Возвращенный io.ReadCloser нужно закрыть.
func (s *LocalStorage) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	path, err := s.objectPath(objectKey)
	if err != nil {
		return nil, err
	}

	// Отсутствующий объект проверяется до блокировки, чтобы не создавать lock-файлы для чужих ключей
	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("ошибка проверки файла '%s': %w", objectKey, err)
	}

	lock := flock.New(path + lockSuffix)
	if _, err = lock.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, fmt.Errorf("ошибка блокировки файла '%s': %w", objectKey, err)
	}
	// Открытый дескриптор остается валидным и после переименования поверх файла,
	// поэтому блокировку достаточно держать только на время открытия.
	file, err := os.Open(path)
	if err != nil {
		s.release(lock)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("ошибка открытия файла '%s': %w", objectKey, err)
	}
	s.unlock(lock)

	return file, nil
}

// DeleteFile удаляет файл. Удаление отсутствующего файла не считается ошибкой.
func (s *LocalStorage) DeleteFile(ctx context.Context, objectKey string) error {
	path, err := s.objectPath(objectKey)
	if err != nil {
		return err
	}

	lock := flock.New(path + lockSuffix)
	if _, err = lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("ошибка блокировки файла '%s': %w", objectKey, err)
	}
	defer s.release(lock)

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("ошибка удаления файла '%s': %w", objectKey, err)
	}

	log.Printf("[LocalStorage] Файл '%s' удален", objectKey)
	return nil
}

// objectPath возвращает путь к файлу объекта. Ключ не может выходить за пределы каталога хранилища.
func (s *LocalStorage) objectPath(objectKey string) (string, error) {
	if err := validateObjectKey(objectKey); err != nil {
		return "", err
	}
	if strings.HasSuffix(objectKey, lockSuffix) {
		return "", ErrInvalidObjectKey
	}
	return filepath.Join(s.baseDir, objectKey), nil
}

// release снимает блокировку и удаляет lock-файл, чтобы в каталоге оставались только объекты.
func (s *LocalStorage) release(lock *flock.Flock) {
	s.unlock(lock)
	if err := os.Remove(lock.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[LocalStorage] Ошибка удаления lock-файла '%s': %v", lock.Path(), err)
	}
}

func (s *LocalStorage) unlock(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		log.Printf("[LocalStorage] Ошибка снятия блокировки '%s': %v", lock.Path(), err)
	}
}
