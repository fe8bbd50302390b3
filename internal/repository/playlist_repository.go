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

const playlistColumns = `id, name, description, is_secret, creator_id, cover_key, created_at, updated_at`

// PlaylistRepository определяет методы для работы с плейлистами.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error)
	GetPlaylistByID(ctx context.Context, id int64) (*models.Playlist, error)
	ListPlaylistsByCreator(ctx context.Context, creatorID int64) ([]models.Playlist, error)
	CountSecretPlaylists(ctx context.Context, creatorID int64) (int, error)
	UpdatePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error)
	SetCover(ctx context.Context, id int64, coverKey string) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error
}

// postgresPlaylistRepository реализует PlaylistRepository для PostgreSQL.
type postgresPlaylistRepository struct {
	db *sqlx.DB
}

// NewPostgresPlaylistRepository создает новый экземпляр репозитория плейлистов.
func NewPostgresPlaylistRepository(db *sqlx.DB) PlaylistRepository {
	return &postgresPlaylistRepository{db: db}
}

// CreatePlaylist сохраняет новый плейлист и возвращает его с заполненными ID и временем создания.
func (r *postgresPlaylistRepository) CreatePlaylist(
	ctx context.Context,
	playlist *models.Playlist,
) (*models.Playlist, error) {
	query := `INSERT INTO playlists (name, description, is_secret, creator_id)
	          VALUES ($1, $2, $3, $4) RETURNING ` + playlistColumns
	var created models.Playlist

	err := r.db.QueryRowxContext(ctx, query,
		playlist.Name, playlist.Description, playlist.IsSecret, playlist.CreatorID,
	).StructScan(&created)
	if err != nil {
		log.Printf("[PlaylistRepo] Ошибка создания плейлиста для пользователя ID %d: %v", playlist.CreatorID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание плейлиста: %w", err)
	}

	log.Printf("[PlaylistRepo] Плейлист ID %d создан пользователем ID %d", created.ID, created.CreatorID)
	return &created, nil
}

// GetPlaylistByID находит плейлист по ID.
func (r *postgresPlaylistRepository) GetPlaylistByID(ctx context.Context, id int64) (*models.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id=$1`
	var playlist models.Playlist

	err := r.db.GetContext(ctx, &playlist, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PlaylistRepo] Плейлист ID %d не найден", id)
			return nil, ErrPlaylistNotFound
		}
		log.Printf("[PlaylistRepo] Ошибка при поиске плейлиста ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение плейлиста: %w", err)
	}

	return &playlist, nil
}

// ListPlaylistsByCreator возвращает плейлисты, созданные пользователем.
func (r *postgresPlaylistRepository) ListPlaylistsByCreator(
	ctx context.Context,
	creatorID int64,
) ([]models.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE creator_id=$1 ORDER BY id`

	playlists := make([]models.Playlist, 0)
	if err := r.db.SelectContext(ctx, &playlists, query, creatorID); err != nil {
		log.Printf("[PlaylistRepo] Ошибка получения плейлистов пользователя ID %d: %v", creatorID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка плейлистов: %w", err)
	}

	return playlists, nil
}

// CountSecretPlaylists считает секретные плейлисты пользователя.
func (r *postgresPlaylistRepository) CountSecretPlaylists(ctx context.Context, creatorID int64) (int, error) {
	query := `SELECT COUNT(*) FROM playlists WHERE creator_id=$1 AND is_secret=TRUE`
	var count int

	if err := r.db.GetContext(ctx, &count, query, creatorID); err != nil {
		log.Printf("[PlaylistRepo] Ошибка подсчета секретных плейлистов пользователя ID %d: %v", creatorID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на подсчет секретных плейлистов: %w", err)
	}

	return count, nil
}

// UpdatePlaylist сохраняет название, описание и секретность плейлиста.
// Владелец плейлиста не меняется.
func (r *postgresPlaylistRepository) UpdatePlaylist(
	ctx context.Context,
	playlist *models.Playlist,
) (*models.Playlist, error) {
	query := `UPDATE playlists SET name=$1, description=$2, is_secret=$3, updated_at=now()
	          WHERE id=$4 RETURNING ` + playlistColumns
	var updated models.Playlist

	err := r.db.QueryRowxContext(ctx, query,
		playlist.Name, playlist.Description, playlist.IsSecret, playlist.ID,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlaylistNotFound
		}
		log.Printf("[PlaylistRepo] Ошибка обновления плейлиста ID %d: %v", playlist.ID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление плейлиста: %w", err)
	}

	log.Printf("[PlaylistRepo] Плейлист ID %d обновлен", updated.ID)
	return &updated, nil
}

// SetCover сохраняет ключ обложки плейлиста.
func (r *postgresPlaylistRepository) SetCover(
	ctx context.Context,
	id int64,
	coverKey string,
) (*models.Playlist, error) {
	query := `UPDATE playlists SET cover_key=$1, updated_at=now() WHERE id=$2 RETURNING ` + playlistColumns
	var updated models.Playlist

	err := r.db.QueryRowxContext(ctx, query, coverKey, id).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlaylistNotFound
		}
		log.Printf("[PlaylistRepo] Ошибка сохранения обложки плейлиста ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на сохранение обложки: %w", err)
	}

	return &updated, nil
}

// DeletePlaylist удаляет плейлист. Записи о доступе и песнях плейлиста удаляются каскадно.
func (r *postgresPlaylistRepository) DeletePlaylist(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id=$1`, id)
	if err != nil {
		log.Printf("[PlaylistRepo] Ошибка удаления плейлиста ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление плейлиста: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}

	log.Printf("[PlaylistRepo] Плейлист ID %d удален", id)
	return nil
}

// Кастомные ошибки репозитория плейлистов.
var (
	ErrPlaylistNotFound = errors.New("плейлист не найден")
)
