package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/playlists/internal/handlers"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSongRouter(h *handlers.SongHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(withUser(testUser))
	r.Post("/playlists/{id}/songs", h.Add)
	r.Get("/playlists/{id}/songs", h.List)
	r.Get("/songs/search", h.Search)
	return r
}

func TestSongHandler_Add(t *testing.T) {
	req := models.AddSongRequest{Name: "Song", Artist: "Artist", URL: "https://example.com/s.mp3"}

	tests := []struct {
		name            string
		body            string
		mockCall        bool
		mockReturnError error
		expectedStatus  int
		expectedBody    string
	}{
		{
			name:           "Песня добавлена",
			body:           `{"name":"Song","artist":"Artist","url":"https://example.com/s.mp3"}`,
			mockCall:       true,
			expectedStatus: http.StatusCreated,
			expectedBody:   "Песня добавлена в плейлист",
		},
		{
			name:            "Песня уже в плейлисте",
			body:            `{"name":"Song","artist":"Artist","url":"https://example.com/s.mp3"}`,
			mockCall:        true,
			mockReturnError: services.ErrSongAlreadyInPlaylist,
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    services.ErrSongAlreadyInPlaylist.Error(),
		},
		{
			name:            "Плейлист не найден",
			body:            `{"name":"Song","artist":"Artist","url":"https://example.com/s.mp3"}`,
			mockCall:        true,
			mockReturnError: services.ErrPlaylistNotFound,
			expectedStatus:  http.StatusNotFound,
		},
		{
			name:            "Не владелец",
			body:            `{"name":"Song","artist":"Artist","url":"https://example.com/s.mp3"}`,
			mockCall:        true,
			mockReturnError: services.ErrForbidden,
			expectedStatus:  http.StatusForbidden,
		},
		{
			name:           "Невалидный JSON",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSongService)
			if tt.mockCall {
				var song *models.Song
				if tt.mockReturnError == nil {
					song = &models.Song{ID: 3, Name: "Song", Artist: "Artist"}
				}
				mockService.On("AddSong", mock.Anything, int64(1), int64(10), req).Return(song, tt.mockReturnError).Once()
			}

			rr := httptest.NewRecorder()
			setupSongRouter(handlers.NewSongHandler(mockService)).
				ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/playlists/10/songs", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestSongHandler_List(t *testing.T) {
	mockService := new(MockSongService)
	mockService.On("ListSongs", mock.Anything, int64(1), int64(10)).
		Return([]models.Song{{ID: 1, Name: "Song", Artist: "Artist"}}, nil).Once()
	mockService.On("ListSongs", mock.Anything, int64(1), int64(11)).Return(nil, services.ErrForbidden).Once()

	r := setupSongRouter(handlers.NewSongHandler(mockService))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/playlists/10/songs", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"artist":"Artist"`)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/playlists/11/songs", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	mockService.AssertExpectations(t)
}

func TestSongHandler_Search(t *testing.T) {
	mockService := new(MockSongService)
	mockService.On("SearchSongs", mock.Anything, "bohemian", "queen").
		Return([]models.Song{{ID: 1, Name: "Bohemian Rhapsody", Artist: "Queen"}}, nil).Once()
	mockService.On("SearchSongs", mock.Anything, "", "").Return([]models.Song{}, nil).Once()

	r := setupSongRouter(handlers.NewSongHandler(mockService))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/songs/search?name=bohemian&artist=queen", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bohemian Rhapsody")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/songs/search", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	mockService.AssertExpectations(t)
}
