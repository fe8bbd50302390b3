package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/maynagashev/playlists/internal/access"
	"github.com/maynagashev/playlists/internal/repository"
	"github.com/maynagashev/playlists/internal/storage"
	"github.com/maynagashev/playlists/models"
	"golang.org/x/image/draw"
)

const (
	// MaxCoverSize - максимальный размер загружаемой обложки.
	MaxCoverSize = 5 << 20
	// DefaultCoverMaxWidth - ширина, до которой уменьшаются широкие обложки.
	DefaultCoverMaxWidth = 512

	// maxCoverPixels ограничивает размер декодированного изображения в памяти.
	maxCoverPixels = 40_000_000

	jpegQuality = 85
)

// CoverService управляет обложками плейлистов.
type CoverService interface {
	UploadCover(ctx context.Context, userID, playlistID int64, file io.Reader) (*models.Playlist, error)
	OpenCover(ctx context.Context, key string) (io.ReadCloser, string, error) // Возвращает содержимое и Content-Type
	CoverURL(key string) string
}

var _ CoverService = (*coverService)(nil)

type coverService struct {
	repos         Repositories
	files         storage.FileStorage
	publicBaseURL string
	maxWidth      int
}

// NewCoverService создает сервис обложек. maxWidth <= 0 означает DefaultCoverMaxWidth.
func NewCoverService(repos Repositories, files storage.FileStorage, publicBaseURL string, maxWidth int) CoverService {
	if maxWidth <= 0 {
		maxWidth = DefaultCoverMaxWidth
	}
	return &coverService{repos: repos, files: files, publicBaseURL: publicBaseURL, maxWidth: maxWidth}
}

// CoverURL возвращает публичную ссылку на обложку.
func CoverURL(publicBaseURL, key string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/uploads/" + key
}

func (s *coverService) CoverURL(key string) string {
	return CoverURL(s.publicBaseURL, key)
}

// UploadCover проверяет изображение, при необходимости уменьшает его и сохраняет как обложку плейлиста.
// Предыдущая обложка удаляется из хранилища без влияния на результат.
func (s *coverService) UploadCover(
	ctx context.Context,
	userID, playlistID int64,
	file io.Reader,
) (*models.Playlist, error) {
	playlist, err := loadAuthorized(ctx, s.repos, userID, playlistID, access.UploadCover)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxCoverSize+1))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла обложки: %w", err)
	}
	if len(data) > MaxCoverSize {
		return nil, ErrImageTooLarge
	}

	data, contentType, err := s.prepareImage(data)
	if err != nil {
		return nil, err
	}

	key := uuid.NewString() + extensionFor(contentType)
	if err = s.files.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("ошибка сохранения обложки: %w", err)
	}

	updated, err := s.repos.Playlists.SetCover(ctx, playlistID, key)
	if err != nil {
		s.removeFile(ctx, key)
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("ошибка сохранения ключа обложки плейлиста %d: %w", playlistID, err)
	}

	if playlist.CoverKey != nil {
		s.removeFile(ctx, *playlist.CoverKey)
	}

	log.Printf("[CoverService] Обложка '%s' загружена для плейлиста %d (%d байт)", key, playlistID, len(data))
	return updated, nil
}

// OpenCover открывает сохраненную обложку для отдачи клиенту.
func (s *coverService) OpenCover(ctx context.Context, key string) (io.ReadCloser, string, error) {
	rc, err := s.files.DownloadFile(ctx, key)
	if err != nil {
		return nil, "", err
	}
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return rc, contentType, nil
}

// prepareImage проверяет формат и уменьшает изображения шире maxWidth с сохранением пропорций.
func (s *coverService) prepareImage(data []byte) ([]byte, string, error) {
	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, "", ErrInvalidImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", ErrInvalidImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxCoverPixels {
		return nil, "", ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= s.maxWidth {
		return data, contentType, nil
	}

	height := bounds.Dy() * s.maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if contentType == "image/png" {
		err = png.Encode(&buf, dst)
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, "", fmt.Errorf("ошибка кодирования обложки: %w", err)
	}
	return buf.Bytes(), contentType, nil
}

func (s *coverService) removeFile(ctx context.Context, key string) {
	if err := s.files.DeleteFile(ctx, key); err != nil {
		log.Printf("[CoverService] Не удалось удалить файл обложки '%s': %v", key, err)
	}
}

func extensionFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
