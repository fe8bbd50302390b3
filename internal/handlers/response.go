package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/playlists/internal/middleware"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

const internalErrorMessage = "Внутренняя ошибка сервера"

// errorStatuses сопоставляет ошибки сервисов с HTTP статусами. Текст ошибки безопасно отдавать клиенту.
var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrValidation, http.StatusBadRequest},
	{services.ErrEmailTaken, http.StatusBadRequest},
	{services.ErrUnknownEmail, http.StatusBadRequest},
	{services.ErrWrongPassword, http.StatusBadRequest},
	{services.ErrAlreadyShared, http.StatusBadRequest},
	{services.ErrShareWithSelf, http.StatusBadRequest},
	{services.ErrSongAlreadyInPlaylist, http.StatusBadRequest},
	{services.ErrInvalidImage, http.StatusBadRequest},
	{services.ErrImageTooLarge, http.StatusBadRequest},
	{services.ErrPlaylistNotFound, http.StatusNotFound},
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrSecretQuotaExceeded, http.StatusForbidden},
}

// writeJSON отправляет ответ в формате JSON.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Клиент уже получил статус, сложно что-то изменить
		log.Printf("[Handlers] Ошибка кодирования ответа: %v", err)
	}
}

// writeError отправляет ошибку в виде {"message": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// writeServiceError переводит ошибку сервиса в HTTP ответ. Непредвиденные ошибки
// логируются и возвращаются клиенту как 500 без подробностей.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			log.Printf("[%s] %v", op, err)
			message := e.err.Error()
			if e.err == services.ErrValidation {
				message = err.Error()
			}
			writeError(w, e.status, message)
			return
		}
	}
	log.Printf("[%s] Внутренняя ошибка: %v", op, err)
	writeError(w, http.StatusInternalServerError, internalErrorMessage)
}

// currentUserID извлекает ID пользователя, добавленный middleware.Authenticator.
func currentUserID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		log.Printf("[%s] Не удалось получить пользователя из контекста", op)
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return 0, false
	}
	return userID, true
}

// playlistIDParam разбирает {id} из пути.
func playlistIDParam(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		log.Printf("[%s] Неверный ID плейлиста: '%s'", op, raw)
		writeError(w, http.StatusBadRequest, "Неверный ID плейлиста")
		return 0, false
	}
	return id, true
}

// decodeJSON декодирует тело запроса, при ошибке отвечает 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Printf("[%s] Ошибка декодирования запроса: %v", op, err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return false
	}
	return true
}
