package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/maynagashev/playlists/models"
)

// ShareRepository определяет методы для работы с доступом к плейлистам.
type ShareRepository interface {
	CreateShare(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error)
	GetShare(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error)
	ListSharedUsers(ctx context.Context, playlistID int64) ([]models.UserSummary, error)
	ListPlaylistsSharedWith(ctx context.Context, userID int64) ([]models.Playlist, error)
}

// postgresShareRepository реализует ShareRepository для PostgreSQL.
type postgresShareRepository struct {
	db *sqlx.DB
}

// NewPostgresShareRepository создает новый экземпляр репозитория доступа.
func NewPostgresShareRepository(db *sqlx.DB) ShareRepository {
	return &postgresShareRepository{db: db}
}

// CreateShare предоставляет пользователю доступ к плейлисту.
// Повторное предоставление доступа той же паре возвращает ErrAlreadyShared.
func (r *postgresShareRepository) CreateShare(
	ctx context.Context,
	playlistID, userID int64,
) (*models.SharedPlaylist, error) {
	query := `INSERT INTO shared_playlists (playlist_id, user_id) VALUES ($1, $2)
	          RETURNING id, playlist_id, user_id, created_at`
	var shared models.SharedPlaylist

	err := r.db.QueryRowxContext(ctx, query, playlistID, userID).StructScan(&shared)
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("[ShareRepo] Плейлист ID %d уже доступен пользователю ID %d", playlistID, userID)
			return nil, ErrAlreadyShared
		}
		log.Printf("[ShareRepo] Ошибка предоставления доступа к плейлисту ID %d: %v", playlistID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на предоставление доступа: %w", err)
	}

	log.Printf("[ShareRepo] Пользователю ID %d предоставлен доступ к плейлисту ID %d", userID, playlistID)
	return &shared, nil
}

// GetShare находит запись о доступе пользователя к плейлисту.
func (r *postgresShareRepository) GetShare(
	ctx context.Context,
	playlistID, userID int64,
) (*models.SharedPlaylist, error) {
	query := `SELECT id, playlist_id, user_id, created_at FROM shared_playlists WHERE playlist_id=$1 AND user_id=$2`
	var shared models.SharedPlaylist

	err := r.db.GetContext(ctx, &shared, query, playlistID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShareNotFound
		}
		log.Printf("[ShareRepo] Ошибка поиска доступа к плейлисту ID %d: %v", playlistID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение доступа: %w", err)
	}

	return &shared, nil
}

// ListSharedUsers возвращает пользователей, которым предоставлен доступ к плейлисту.
func (r *postgresShareRepository) ListSharedUsers(
	ctx context.Context,
	playlistID int64,
) ([]models.UserSummary, error) {
	query := `SELECT u.id, u.email
	          FROM shared_playlists sp
	          JOIN users u ON u.id = sp.user_id
	          WHERE sp.playlist_id=$1
	          ORDER BY sp.id`

	users := make([]models.UserSummary, 0)
	if err := r.db.SelectContext(ctx, &users, query, playlistID); err != nil {
		log.Printf("[ShareRepo] Ошибка получения списка доступа к плейлисту ID %d: %v", playlistID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка доступа: %w", err)
	}

	return users, nil
}

// ListPlaylistsSharedWith возвращает плейлисты, к которым пользователю предоставлен доступ.
func (r *postgresShareRepository) ListPlaylistsSharedWith(
	ctx context.Context,
	userID int64,
) ([]models.Playlist, error) {
	query := `SELECT p.id, p.name, p.description, p.is_secret, p.creator_id, p.cover_key, p.created_at, p.updated_at
	          FROM shared_playlists sp
	          JOIN playlists p ON p.id = sp.playlist_id
	          WHERE sp.user_id=$1
	          ORDER BY sp.id`

	playlists := make([]models.Playlist, 0)
	if err := r.db.SelectContext(ctx, &playlists, query, userID); err != nil {
		log.Printf("[ShareRepo] Ошибка получения плейлистов, доступных пользователю ID %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение доступных плейлистов: %w", err)
	}

	return playlists, nil
}

// Кастомные ошибки репозитория доступа.
var (
	ErrAlreadyShared = errors.New("плейлист уже доступен этому пользователю")
	ErrShareNotFound = errors.New("доступ к плейлисту не предоставлен")
)
