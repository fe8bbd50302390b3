package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная функция для сброса флагов между тестами.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// clearEnv очищает переменные окружения конфигурации на время теста.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envServerPort, envDatabaseDSN, envJWTSecret, envPublicBaseURL, envStorageBackend, envUploadDir,
		envMinioEndpoint, envMinioUser, envMinioPassword, envMinioBucket, envCoverMaxWidth,
	} {
		t.Setenv(key, "")
	}
}

// withArgs подменяет аргументы командной строки на время теста.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	originalArgs := os.Args
	t.Cleanup(func() { os.Args = originalArgs })
	os.Args = append([]string{"cmd"}, args...)
	resetFlags()
}

func TestParseFlags(t *testing.T) {
	t.Run("Все параметры из флагов", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-port=8080", "-database-dsn=postgres://...", "-jwt-secret=s3cret",
			"-public-base-url=https://music.example.com", "-upload-dir=/tmp/covers", "-cover-max-width=300")

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.Equal(t, "https://music.example.com", cfg.PublicBaseURL)
		assert.Equal(t, storageLocal, cfg.StorageBackend)
		assert.Equal(t, "/tmp/covers", cfg.UploadDir)
		assert.Equal(t, 300, cfg.CoverMaxWidth)
	})

	t.Run("Все параметры из переменных окружения", func(t *testing.T) {
		clearEnv(t)
		withArgs(t)
		t.Setenv(envServerPort, "9090")
		t.Setenv(envDatabaseDSN, "env_postgres://...")
		t.Setenv(envJWTSecret, "env-secret")
		t.Setenv(envStorageBackend, storageMinio)
		t.Setenv(envMinioEndpoint, "minio:9000")
		t.Setenv(envMinioUser, "minioadmin")
		t.Setenv(envMinioPassword, "minioadmin")

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "env-secret", cfg.JWTSecret)
		assert.Equal(t, storageMinio, cfg.StorageBackend)
		assert.Equal(t, "minio:9000", cfg.MinioEndpoint)
		assert.Equal(t, "minioadmin", cfg.MinioUser)
		assert.Equal(t, defaultMinioBucket, cfg.MinioBucket)
	})

	t.Run("Значения по умолчанию", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-database-dsn=postgres://...", "-jwt-secret=s3cret")

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, defaultServerPort, cfg.Port)
		assert.Equal(t, "http://localhost:"+defaultServerPort, cfg.PublicBaseURL)
		assert.Equal(t, defaultUploadDir, cfg.UploadDir)
		assert.Equal(t, defaultCoverMaxWidth, cfg.CoverMaxWidth)
	})

	t.Run("Отсутствует строка подключения к БД", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-jwt-secret=s3cret")

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указана строка подключения к БД")
	})

	t.Run("Отсутствует секрет для токенов", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-database-dsn=postgres://...")

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envJWTSecret)
	})

	t.Run("MinIO без адреса", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-database-dsn=postgres://...", "-jwt-secret=s3cret", "-storage=minio")

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан адрес MinIO")
	})

	t.Run("Неизвестное хранилище", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-database-dsn=postgres://...", "-jwt-secret=s3cret", "-storage=ftp")

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "неизвестное хранилище")
	})

	t.Run("Неверная ширина обложки", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-database-dsn=postgres://...", "-jwt-secret=s3cret")
		t.Setenv(envCoverMaxWidth, "wide")

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "неверная ширина обложки")
	})

	t.Run("Флаги переопределяют переменные окружения", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envServerPort, "9090")
		t.Setenv(envDatabaseDSN, "env_postgres://...")
		t.Setenv(envJWTSecret, "env-secret")
		withArgs(t, "-port=8080", "-database-dsn=flag_postgres://...", "-jwt-secret=flag-secret")

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "flag_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.JWTSecret)
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("Файл отсутствует", func(t *testing.T) {
		require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("Переменные загружаются из файла", func(t *testing.T) {
		const key = "PLAYLISTS_DOTENV_TEST"
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv(key))
	})

	t.Run("Заданные переменные не перезаписываются", func(t *testing.T) {
		const key = "PLAYLISTS_DOTENV_KEEP"
		t.Setenv(key, "from-env")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "from-env", os.Getenv(key))
	})
}
