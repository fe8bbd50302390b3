package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/maynagashev/playlists/models"
)

// SongRepository определяет методы для работы с песнями.
type SongRepository interface {
	FindOrCreateSong(ctx context.Context, song *models.Song) (*models.Song, error)
	AddSongToPlaylist(ctx context.Context, playlistID, songID int64) error
	ListSongsByPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error)
	SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error)
}

// postgresSongRepository реализует SongRepository для PostgreSQL.
type postgresSongRepository struct {
	db *sqlx.DB
}

// NewPostgresSongRepository создает новый экземпляр репозитория песен.
func NewPostgresSongRepository(db *sqlx.DB) SongRepository {
	return &postgresSongRepository{db: db}
}

// FindOrCreateSong возвращает песню с таким же названием и исполнителем или создает новую.
// URL существующей песни не перезаписывается.
func (r *postgresSongRepository) FindOrCreateSong(ctx context.Context, song *models.Song) (*models.Song, error) {
	query := `INSERT INTO songs (name, artist, url) VALUES ($1, $2, $3)
	          ON CONFLICT (name, artist) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id, name, artist, url, created_at`
	var result models.Song

	err := r.db.QueryRowxContext(ctx, query, song.Name, song.Artist, song.URL).StructScan(&result)
	if err != nil {
		log.Printf("[SongRepo] Ошибка поиска/создания песни '%s' - '%s': %v", song.Artist, song.Name, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание песни: %w", err)
	}

	return &result, nil
}

// AddSongToPlaylist добавляет песню в плейлист.
// Если песня уже есть в плейлисте, возвращает ErrSongAlreadyInPlaylist.
func (r *postgresSongRepository) AddSongToPlaylist(ctx context.Context, playlistID, songID int64) error {
	query := `INSERT INTO playlist_songs (playlist_id, song_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, playlistID, songID); err != nil {
		if isUniqueViolation(err) {
			log.Printf("[SongRepo] Песня ID %d уже есть в плейлисте ID %d", songID, playlistID)
			return ErrSongAlreadyInPlaylist
		}
		log.Printf("[SongRepo] Ошибка добавления песни ID %d в плейлист ID %d: %v", songID, playlistID, err)
		return fmt.Errorf("ошибка выполнения запроса на добавление песни в плейлист: %w", err)
	}

	log.Printf("[SongRepo] Песня ID %d добавлена в плейлист ID %d", songID, playlistID)
	return nil
}

// ListSongsByPlaylist возвращает песни плейлиста в порядке добавления.
func (r *postgresSongRepository) ListSongsByPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error) {
	query := `SELECT s.id, s.name, s.artist, s.url, s.created_at
	          FROM playlist_songs ps
	          JOIN songs s ON s.id = ps.song_id
	          WHERE ps.playlist_id=$1
	          ORDER BY ps.added_at, s.id`

	songs := make([]models.Song, 0)
	if err := r.db.SelectContext(ctx, &songs, query, playlistID); err != nil {
		log.Printf("[SongRepo] Ошибка получения песен плейлиста ID %d: %v", playlistID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение песен плейлиста: %w", err)
	}

	return songs, nil
}

// SearchSongs ищет песни по подстроке в названии и/или исполнителе без учета регистра.
// Пустой фильтр не ограничивает выборку.
func (r *postgresSongRepository) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	query := `SELECT id, name, artist, url, created_at FROM songs
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	            AND ($2 = '' OR artist ILIKE '%' || $2 || '%')
	          ORDER BY id`

	songs := make([]models.Song, 0)
	if err := r.db.SelectContext(ctx, &songs, query, escapeLike(name), escapeLike(artist)); err != nil {
		log.Printf("[SongRepo] Ошибка поиска песен (name=%q, artist=%q): %v", name, artist, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на поиск песен: %w", err)
	}

	return songs, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы они искались как обычные символы.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Кастомные ошибки репозитория песен.
var (
	ErrSongAlreadyInPlaylist = errors.New("песня уже есть в плейлисте")
)
