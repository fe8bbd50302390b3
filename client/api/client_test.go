package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maynagashev/playlists/client/api"
	"github.com/maynagashev/playlists/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-jwt-token"

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func newAuthedClient(t *testing.T, handler http.HandlerFunc) api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.NewHTTPClient(server.URL)
	client.SetAuthToken(testToken)
	return client
}

func TestHTTPClient_Register(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        interface{}
		expectedID  int64
		expectedErr string
	}{
		{
			name:       "Успех",
			status:     http.StatusCreated,
			body:       models.RegisterResponse{Message: "ok", UserID: 42},
			expectedID: 42,
		},
		{
			name:        "Email уже занят",
			status:      http.StatusBadRequest,
			body:        models.MessageResponse{Message: "Пользователь с таким email уже существует"},
			expectedErr: "статус 400: Пользователь с таким email уже существует",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/auth/register", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Empty(t, r.Header.Get("Authorization"))

				var req models.RegisterRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "a@example.com", req.Email)
				assert.Equal(t, "secret", req.Password)

				writeJSON(t, w, tt.status, tt.body)
			}))
			defer server.Close()

			id, err := api.NewHTTPClient(server.URL).Register(context.Background(), "a@example.com", "secret")
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				var apiErr *api.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.status, apiErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestHTTPClient_Login(t *testing.T) {
	t.Run("Успех: токен сохраняется для следующих запросов", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth/login":
				writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: testToken})
			case "/me":
				assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
				writeJSON(t, w, http.StatusOK, models.Profile{ID: 1, Email: "a@example.com"})
			default:
				t.Errorf("неожиданный путь %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		token, err := client.Login(context.Background(), "a@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, testToken, token)

		profile, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", profile.Email)
	})

	t.Run("Пустой токен", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, models.LoginResponse{})
		}))
		defer server.Close()

		_, err := api.NewHTTPClient(server.URL).Login(context.Background(), "a@example.com", "secret")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "пустой токен")
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Неверный пароль"})
		}))
		defer server.Close()

		_, err := api.NewHTTPClient(server.URL).Login(context.Background(), "a@example.com", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Неверный пароль")
	})
}

func TestHTTPClient_PrivateWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("Сервер не должен был получить запрос без токена")
	}))
	defer server.Close()

	client := api.NewHTTPClient(server.URL)
	_, err := client.ListPlaylists(context.Background())
	require.ErrorIs(t, err, api.ErrNoToken)
}

func TestHTTPClient_Unauthorized(t *testing.T) {
	client := newAuthedClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Требуется аутентификация"})
	})

	_, err := client.GetPlaylist(context.Background(), 1)
	require.ErrorIs(t, err, api.ErrAuthorization)
}

func TestHTTPClient_Playlists(t *testing.T) {
	ctx := context.Background()

	t.Run("Создание", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/playlists", r.URL.Path)
			var req models.CreatePlaylistRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.True(t, req.IsSecret)
			writeJSON(t, w, http.StatusOK, models.Playlist{ID: 5, Name: req.Name, IsSecret: req.IsSecret})
		})

		p, err := client.CreatePlaylist(ctx, models.CreatePlaylistRequest{Name: "Rock", Description: "d", IsSecret: true})
		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
		assert.Equal(t, "Rock", p.Name)
	})

	t.Run("Квота секретных плейлистов", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusForbidden, models.MessageResponse{Message: "Превышен лимит"})
		})

		_, err := client.CreatePlaylist(ctx, models.CreatePlaylistRequest{Name: "n", Description: "d", IsSecret: true})
		var apiErr *api.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("Список и доступные мне", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/playlists":
				writeJSON(t, w, http.StatusOK, models.PlaylistsResponse{Playlists: []models.Playlist{{ID: 1}, {ID: 2}}})
			case "/playlists/shared-with-me":
				writeJSON(t, w, http.StatusOK, []models.Playlist{{ID: 3}})
			}
		})

		own, err := client.ListPlaylists(ctx)
		require.NoError(t, err)
		assert.Len(t, own, 2)

		shared, err := client.ListSharedWithMe(ctx)
		require.NoError(t, err)
		require.Len(t, shared, 1)
		assert.Equal(t, int64(3), shared[0].ID)
	})

	t.Run("Детали", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/playlists/7", r.URL.Path)
			writeJSON(t, w, http.StatusOK, models.PlaylistDetail{
				Playlist:   models.Playlist{ID: 7},
				Creator:    models.UserSummary{ID: 1, Email: "owner@example.com"},
				SharedWith: []models.UserSummary{{ID: 2, Email: "b@example.com"}},
			})
		})

		detail, err := client.GetPlaylist(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", detail.Creator.Email)
		assert.Len(t, detail.SharedWith, 1)
	})

	t.Run("Не найден", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Плейлист не найден"})
		})

		_, err := client.GetPlaylist(ctx, 99)
		var apiErr *api.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Плейлист не найден", apiErr.Message)
	})

	t.Run("Частичное обновление", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			var raw map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.Equal(t, "New", raw["name"])
			assert.Nil(t, raw["description"])
			writeJSON(t, w, http.StatusOK, models.Playlist{ID: 7, Name: "New"})
		})

		name := "New"
		p, err := client.UpdatePlaylist(ctx, 7, models.UpdatePlaylistRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New", p.Name)
	})

	t.Run("Удаление", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Плейлист успешно удален"})
		})

		require.NoError(t, client.DeletePlaylist(ctx, 7))
	})
}

func TestHTTPClient_UploadCover(t *testing.T) {
	client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/playlists/7/cover", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("cover")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "cover.png", header.Filename)
		assert.Equal(t, "image-bytes", string(data))

		key := "abc.png"
		writeJSON(t, w, http.StatusOK, models.CoverResponse{
			Message:  "Обложка загружена",
			Playlist: models.Playlist{ID: 7, CoverKey: &key},
		})
	})

	p, err := client.UploadCover(context.Background(), 7, "cover.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.NotNil(t, p.CoverKey)
	assert.Equal(t, "abc.png", *p.CoverKey)
}

func TestHTTPClient_Songs(t *testing.T) {
	ctx := context.Background()

	t.Run("Добавление", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/playlists/7/songs", r.URL.Path)
			var req models.AddSongRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusCreated, models.AddSongResponse{
				Message: "Песня добавлена",
				Song:    models.Song{ID: 3, Name: req.Name, Artist: req.Artist},
			})
		})

		song, err := client.AddSong(ctx, 7, models.AddSongRequest{Name: "Song", Artist: "Band"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), song.ID)
		assert.Equal(t, "Band", song.Artist)
	})

	t.Run("Список", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, []models.Song{{ID: 1}, {ID: 2}})
		})

		songs, err := client.ListSongs(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, songs, 2)
	})

	t.Run("Поиск передает только непустые фильтры", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/songs/search", r.URL.Path)
			assert.Equal(t, "queen", r.URL.Query().Get("artist"))
			_, hasName := r.URL.Query()["name"]
			assert.False(t, hasName)
			writeJSON(t, w, http.StatusOK, []models.Song{{ID: 1, Artist: "Queen"}})
		})

		songs, err := client.SearchSongs(ctx, "", "queen")
		require.NoError(t, err)
		assert.Len(t, songs, 1)
	})
}

func TestHTTPClient_Sharing(t *testing.T) {
	ctx := context.Background()

	t.Run("Предоставление доступа", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/playlists/7/share", r.URL.Path)
			var req models.ShareRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(2), req.UserID)
			writeJSON(t, w, http.StatusOK, models.ShareResponse{
				Message: "Доступ к плейлисту предоставлен",
				Shared:  models.SharedPlaylist{ID: 1, PlaylistID: 7, UserID: 2},
			})
		})

		shared, err := client.SharePlaylist(ctx, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), shared.UserID)
	})

	t.Run("Повторный доступ", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Доступ уже предоставлен"})
		})

		_, err := client.SharePlaylist(ctx, 7, 2)
		var apiErr *api.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("Пользователи с доступом", func(t *testing.T) {
		client := newAuthedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/playlists/7/shared-users", r.URL.Path)
			writeJSON(t, w, http.StatusOK, []string{"b@example.com"})
		})

		emails, err := client.ListSharedUsers(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"b@example.com"}, emails)
	})
}
