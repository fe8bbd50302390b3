package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/internal/storage"
	"github.com/maynagashev/playlists/models"
)

// coverFormOverhead - запас на заголовки multipart поверх размера самого файла.
const coverFormOverhead = 1 << 20

// CoverHandler обрабатывает загрузку и отдачу обложек плейлистов.
type CoverHandler struct {
	coverService services.CoverService
}

// NewCoverHandler создает новый экземпляр CoverHandler.
func NewCoverHandler(cs services.CoverService) *CoverHandler {
	return &CoverHandler{coverService: cs}
}

// Upload принимает multipart форму с файлом в поле "cover".
func (h *CoverHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "CoverHandler:Upload"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, services.MaxCoverSize+coverFormOverhead)
	file, header, err := r.FormFile("cover")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusBadRequest, services.ErrImageTooLarge.Error())
		case errors.Is(err, http.ErrMissingFile):
			writeError(w, http.StatusBadRequest, "Файл обложки не передан (поле cover)")
		default:
			log.Printf("[%s] Ошибка разбора формы: %v", op, err)
			writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		}
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("[%s] Ошибка закрытия файла: %v", op, closeErr)
		}
	}()

	log.Printf("[%s] Загрузка обложки '%s' (%d байт) для плейлиста %d", op, header.Filename, header.Size, playlistID)

	playlist, err := h.coverService.UploadCover(r.Context(), userID, playlistID, file)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CoverResponse{
		Message:  "Обложка успешно обновлена",
		Playlist: *playlist,
	})
}

// Serve отдает сохраненную обложку по ключу.
func (h *CoverHandler) Serve(w http.ResponseWriter, r *http.Request) {
	const op = "CoverHandler:Serve"
	key := chi.URLParam(r, "key")

	rc, contentType, err := h.coverService.OpenCover(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidObjectKey) {
			writeError(w, http.StatusNotFound, "Файл не найден")
			return
		}
		log.Printf("[%s] Ошибка открытия обложки '%s': %v", op, key, err)
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Printf("[%s] Ошибка закрытия файла: %v", op, closeErr)
		}
	}()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		log.Printf("[%s] Ошибка отправки обложки '%s': %v", op, key, err)
	}
}
