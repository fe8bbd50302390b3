package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioNoSuchKey = "NoSuchKey"

var _ FileStorage = (*MinioClient)(nil)

// MinioClient реализует FileStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string // Логин
	SecretAccessKey string // Пароль
	UseSSL          bool   // Использовать SSL (обычно false для локальной разработки)
	BucketName      string // Имя бакета для хранения файлов
	Region          string // Регион (не обязательно для MinIO, но может требоваться)
}

// NewMinioClient создает клиент MinIO и при необходимости создает бакет для обложек.
func NewMinioClient(ctx context.Context, cfg MinioConfig) (*MinioClient, error) {
	log.Printf("Инициализация клиента MinIO для эндпоинта %s...", cfg.Endpoint)

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Printf("Бакет '%s' не найден, создаем...", cfg.BucketName)
		err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
	}

	log.Printf("Клиент MinIO инициализирован для бакета '%s'.", cfg.BucketName)
	return &MinioClient{
		client:     minioClient,
		bucketName: cfg.BucketName,
	}, nil
}

// UploadFile загружает файл в MinIO.
func (c *MinioClient) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	if err := validateObjectKey(objectKey); err != nil {
		return err
	}
	log.Printf("[Minio] Загрузка файла '%s' в бакет '%s'...", objectKey, c.bucketName)

	uploadInfo, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		log.Printf("[Minio] Ошибка загрузки файла '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка загрузки файла в MinIO: %w", err)
	}

	log.Printf("[Minio] Файл '%s' успешно загружен, размер: %d, ETag: %s", objectKey, uploadInfo.Size, uploadInfo.ETag)
	return nil
}

// DownloadFile скачивает файл из MinIO.
// Возвращает io.ReadCloser, который нужно закрыть после использования.
func (c *MinioClient) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	if err := validateObjectKey(objectKey); err != nil {
		return nil, err
	}
	log.Printf("[Minio] Скачивание файла '%s' из бакета '%s'...", objectKey, c.bucketName)

	object, err := c.client.GetObject(ctx, c.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		log.Printf("[Minio] Ошибка получения файла '%s': %v", objectKey, err)
		return nil, fmt.Errorf("ошибка получения файла из MinIO: %w", err)
	}

	// GetObject не обращается к серверу до первого чтения, поэтому проверяем наличие объекта через Stat
	if _, err = object.Stat(); err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			log.Printf("[Minio] Файл '%s' не найден в бакете '%s'", objectKey, c.bucketName)
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("ошибка получения метаданных из MinIO: %w", err)
	}

	log.Printf("[Minio] Файл '%s' успешно получен для скачивания", objectKey)
	return object, nil
}

// DeleteFile удаляет файл из MinIO. Удаление отсутствующего объекта не считается ошибкой.
func (c *MinioClient) DeleteFile(ctx context.Context, objectKey string) error {
	if err := validateObjectKey(objectKey); err != nil {
		return err
	}
	log.Printf("[Minio] Удаление файла '%s' из бакета '%s'...", objectKey, c.bucketName)

	if err := c.client.RemoveObject(ctx, c.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("[Minio] Ошибка удаления файла '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка удаления файла из MinIO: %w", err)
	}

	return nil
}
