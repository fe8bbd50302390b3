package handlers

import (
	"net/http"

	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

// ShareHandler обрабатывает HTTP-запросы на предоставление доступа к плейлистам.
type ShareHandler struct {
	shareService services.ShareService
}

// NewShareHandler создает новый экземпляр ShareHandler.
func NewShareHandler(ss services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: ss}
}

// Share предоставляет пользователю userId доступ к плейлисту на чтение.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	const op = "ShareHandler:Share"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	var req models.ShareRequest
	if !decodeJSON(w, r, op, &req) {
		return
	}

	shared, err := h.shareService.SharePlaylist(r.Context(), userID, playlistID, req.UserID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ShareResponse{
		Message: "Доступ к плейлисту предоставлен",
		Shared:  *shared,
	})
}

// SharedUsers возвращает email пользователей, которым предоставлен доступ к плейлисту.
func (h *ShareHandler) SharedUsers(w http.ResponseWriter, r *http.Request) {
	const op = "ShareHandler:SharedUsers"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	users, err := h.shareService.ListSharedUsers(r.Context(), userID, playlistID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	writeJSON(w, http.StatusOK, emails)
}
