package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort     = "3000"
	defaultStorageBackend = storageLocal
	defaultUploadDir      = "uploads"
	defaultMinioBucket    = "playlist-covers"
	defaultCoverMaxWidth  = 512

	storageLocal = "local"
	storageMinio = "minio"

	// Переменные окружения.
	envServerPort     = "SERVER_PORT"
	envDatabaseDSN    = "DATABASE_DSN"
	envJWTSecret      = "JWT_SECRET" //nolint:gosec // Имя переменной окружения, а не секрет
	envPublicBaseURL  = "PUBLIC_BASE_URL"
	envStorageBackend = "STORAGE_BACKEND"
	envUploadDir      = "UPLOAD_DIR"
	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioUser      = "MINIO_USER"
	envMinioPassword  = "MINIO_PASSWORD" //nolint:gosec // Имя переменной окружения, а не секрет
	envMinioBucket    = "MINIO_BUCKET"
	envCoverMaxWidth  = "COVER_MAX_WIDTH"
)

// config хранит конфигурацию сервера.
type config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	PublicBaseURL  string
	StorageBackend string
	UploadDir      string
	MinioEndpoint  string
	MinioUser      string
	MinioPassword  string
	MinioBucket    string
	CoverMaxWidth  int
}

// loadDotEnv загружает переменные из файла .env, если он есть. Уже заданные переменные не перезаписываются.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка загрузки %s: %w", path, err)
	}
	return nil
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаги имеют приоритет над переменными окружения.
func parseFlags() (*config, error) {
	cfg := &config{}
	var coverMaxWidth string

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет для подписи токенов (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.PublicBaseURL, "public-base-url", "",
		fmt.Sprintf("Публичный адрес сервера для ссылок на обложки (env: %s)", envPublicBaseURL))
	flag.StringVar(&cfg.StorageBackend, "storage", "",
		fmt.Sprintf("Хранилище обложек: local или minio (env: %s, default: %s)", envStorageBackend, defaultStorageBackend))
	flag.StringVar(&cfg.UploadDir, "upload-dir", "",
		fmt.Sprintf("Каталог для обложек (env: %s, default: %s)", envUploadDir, defaultUploadDir))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s)", envMinioEndpoint))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Бакет MinIO (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))
	flag.StringVar(&coverMaxWidth, "cover-max-width", "",
		fmt.Sprintf("Максимальная ширина обложки в пикселях (env: %s, default: %d)", envCoverMaxWidth, defaultCoverMaxWidth))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	applyEnv(&cfg.Port, envServerPort, defaultServerPort)
	applyEnv(&cfg.DatabaseDSN, envDatabaseDSN, "")
	applyEnv(&cfg.JWTSecret, envJWTSecret, "")
	applyEnv(&cfg.StorageBackend, envStorageBackend, defaultStorageBackend)
	applyEnv(&cfg.UploadDir, envUploadDir, defaultUploadDir)
	applyEnv(&cfg.MinioEndpoint, envMinioEndpoint, "")
	applyEnv(&cfg.MinioUser, envMinioUser, "")
	applyEnv(&cfg.MinioPassword, envMinioPassword, "")
	applyEnv(&cfg.MinioBucket, envMinioBucket, defaultMinioBucket)
	applyEnv(&coverMaxWidth, envCoverMaxWidth, strconv.Itoa(defaultCoverMaxWidth))
	applyEnv(&cfg.PublicBaseURL, envPublicBaseURL, "http://localhost:"+cfg.Port)

	width, err := strconv.Atoi(coverMaxWidth)
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("неверная ширина обложки '%s' (--cover-max-width или %s)", coverMaxWidth, envCoverMaxWidth)
	}
	cfg.CoverMaxWidth = width

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секрет для подписи токенов (--jwt-secret или " + envJWTSecret + ")")
	}
	switch cfg.StorageBackend {
	case storageLocal:
	case storageMinio:
		if cfg.MinioEndpoint == "" {
			return nil, errors.New("не указан адрес MinIO (--minio-endpoint или " + envMinioEndpoint + ")")
		}
	default:
		return nil, fmt.Errorf("неизвестное хранилище обложек '%s' (ожидается %s или %s)",
			cfg.StorageBackend, storageLocal, storageMinio)
	}

	return cfg, nil
}

// applyEnv заполняет незаданное значение из переменной окружения или значением по умолчанию.
func applyEnv(dst *string, env, fallback string) {
	if *dst != "" {
		return
	}
	if value, ok := os.LookupEnv(env); ok && value != "" {
		*dst = value
		return
	}
	*dst = fallback
}
