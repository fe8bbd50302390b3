package handlers

import (
	"net/http"

	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

// SongHandler обрабатывает HTTP-запросы, связанные с песнями.
type SongHandler struct {
	songService services.SongService
}

// NewSongHandler создает новый экземпляр SongHandler.
func NewSongHandler(ss services.SongService) *SongHandler {
	return &SongHandler{songService: ss}
}

// Add добавляет песню в плейлист.
func (h *SongHandler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "SongHandler:Add"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	var req models.AddSongRequest
	if !decodeJSON(w, r, op, &req) {
		return
	}

	song, err := h.songService.AddSong(r.Context(), userID, playlistID, req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.AddSongResponse{
		Message: "Песня добавлена в плейлист",
		Song:    *song,
	})
}

// List возвращает песни плейлиста.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "SongHandler:List"
	userID, ok := currentUserID(w, r, op)
	if !ok {
		return
	}
	playlistID, ok := playlistIDParam(w, r, op)
	if !ok {
		return
	}

	songs, err := h.songService.ListSongs(r.Context(), userID, playlistID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// Search ищет песни по параметрам name и artist.
func (h *SongHandler) Search(w http.ResponseWriter, r *http.Request) {
	const op = "SongHandler:Search"
	query := r.URL.Query()

	songs, err := h.songService.SearchSongs(r.Context(), query.Get("name"), query.Get("artist"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}
