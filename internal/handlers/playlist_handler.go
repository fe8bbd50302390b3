package handlers

import (
	"log"
	"net/http"

	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

// PlaylistHandler обрабатывает HTTP-запросы, связанные с плейлистами.
type PlaylistHandler struct {
	playlistService services.PlaylistService
}

// NewPlaylistHandler создает новый экземпляр PlaylistHandler.
func NewPlaylistHandler(ps services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: ps}
}

// Create обрабатывает POST запрос на создание плейлиста.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:Create"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}

	var req models.CreatePlaylistRequest
	if !decodeJSON(w, r, op, &req) {
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// List возвращает плейлисты текущего пользователя.
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:List"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}

	playlists, err := h.playlistService.ListPlaylists(r.Context(), userID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PlaylistsResponse{Playlists: playlists})
}

// SharedWithMe возвращает плейлисты, к которым текущему пользователю предоставлен доступ.
func (h *PlaylistHandler) SharedWithMe(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:SharedWithMe"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}

	playlists, err := h.playlistService.ListSharedWithMe(r.Context(), userID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// Get возвращает плейлист с песнями, создателем и списком доступа.
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:Get"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	detail, err := h.playlistService.GetPlaylist(r.Context(), userID, playlistID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// Update обрабатывает PATCH запрос на частичное изменение плейлиста.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:Update"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	var req models.UpdatePlaylistRequest
	if !decodeJSON(w, r, op, &req) {
		return
	}

	updated, err := h.playlistService.UpdatePlaylist(r.Context(), userID, playlistID, req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete обрабатывает DELETE запрос на удаление плейлиста.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "PlaylistHandler:Delete"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	if err := h.playlistService.DeletePlaylist(r.Context(), userID, playlistID); err != nil {
		writeServiceError(w, op, err)
		return
	}

	log.Printf("[%s] Плейлист %d удален", op, playlistID)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Плейлист успешно удален"})
}
