package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/maynagashev/playlists/internal/handlers"
	appmiddleware "github.com/maynagashev/playlists/internal/middleware"
	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/internal/storage"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Подменяются в тестах.
var (
	newPostgresDB  = repository.NewPostgresDB
	migrate        = repository.Migrate
	newMinioClient = storage.NewMinioClient
)

// routeHandlers - обработчики, из которых собирается роутер.
type routeHandlers struct {
	auth      *handlers.AuthHandler
	playlists *handlers.PlaylistHandler
	songs     *handlers.SongHandler
	shares    *handlers.ShareHandler
	covers    *handlers.CoverHandler
}

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db            *sqlx.DB
	fileStorage   storage.FileStorage
	authenticator func(http.Handler) http.Handler
	handlers      routeHandlers
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера плейлистов...")

	if err := loadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if closeErr := deps.db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      setupRouter(deps.handlers, deps.authenticator),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP-сервер слушает порт %s", cfg.Port)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Получен сигнал завершения, останавливаем сервер...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка остановки HTTP-сервера: %w", err)
	}
	log.Println("Сервер остановлен")
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(ctx context.Context, cfg *config) (*dependencies, error) {
	// 1. Сервис токенов: без секрета сервер не запускается
	tokens, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	// 2. Подключение к БД и создание схемы
	deps := &dependencies{}
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	if err = migrate(ctx, deps.db); err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка применения схемы БД: %w", err)
	}

	// 3. Хранилище обложек
	deps.fileStorage, err = setupStorage(ctx, cfg)
	if err != nil {
		closeDB(deps.db)
		return nil, err
	}

	// 4. Создание репозиториев
	repos := services.Repositories{
		Users:     repository.NewPostgresUserRepository(deps.db),
		Playlists: repository.NewPostgresPlaylistRepository(deps.db),
		Shares:    repository.NewPostgresShareRepository(deps.db),
		Songs:     repository.NewPostgresSongRepository(deps.db),
	}

	// 5. Создание сервисов
	authService := services.NewAuthService(repos.Users, repos.Playlists, repos.Shares, tokens)
	playlistService := services.NewPlaylistService(repos, deps.fileStorage, cfg.PublicBaseURL)
	songService := services.NewSongService(repos)
	shareService := services.NewShareService(repos)
	coverService := services.NewCoverService(repos, deps.fileStorage, cfg.PublicBaseURL, cfg.CoverMaxWidth)

	// 6. Создание обработчиков
	deps.authenticator = appmiddleware.Authenticator(tokens, repos.Users)
	deps.handlers = routeHandlers{
		auth:      handlers.NewAuthHandler(authService),
		playlists: handlers.NewPlaylistHandler(playlistService),
		songs:     handlers.NewSongHandler(songService),
		shares:    handlers.NewShareHandler(shareService),
		covers:    handlers.NewCoverHandler(coverService),
	}

	return deps, nil
}

// setupStorage создает хранилище обложек согласно конфигурации.
func setupStorage(ctx context.Context, cfg *config) (storage.FileStorage, error) {
	switch cfg.StorageBackend {
	case storageMinio:
		client, err := newMinioClient(ctx, storage.MinioConfig{
			Endpoint:        cfg.MinioEndpoint,
			AccessKeyID:     cfg.MinioUser,
			SecretAccessKey: cfg.MinioPassword,
			BucketName:      cfg.MinioBucket,
		})
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
		}
		return client, nil
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации локального хранилища: %w", err)
		}
		log.Printf("Обложки хранятся в каталоге '%s'", cfg.UploadDir)
		return local, nil
	}
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(h routeHandlers, authenticator func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Публичные маршруты (регистрация, вход, обложки)
	r.Post("/auth/register", h.auth.Register)
	r.Post("/auth/login", h.auth.Login)
	r.Get("/uploads/{key}", h.covers.Serve)

	// Приватные маршруты (требуют аутентификации)
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.auth.Me)

		r.Post("/playlists", h.playlists.Create)
		r.Get("/playlists", h.playlists.List)
		r.Get("/playlists/shared-with-me", h.playlists.SharedWithMe)
		r.Get("/playlists/{id}", h.playlists.Get)
		r.Patch("/playlists/{id}", h.playlists.Update)
		r.Delete("/playlists/{id}", h.playlists.Delete)
		r.Patch("/playlists/{id}/cover", h.covers.Upload)
		r.Post("/playlists/{id}/songs", h.songs.Add)
		r.Get("/playlists/{id}/songs", h.songs.List)
		r.Post("/playlists/{id}/share", h.shares.Share)
		r.Get("/playlists/{id}/shared-users", h.shares.SharedUsers)

		r.Get("/songs/search", h.songs.Search)
	})
	return r
}

func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("Ошибка закрытия соединения с БД: %v", err)
	}
}
