// Package api содержит HTTP-клиент для API сервера плейлистов.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/maynagashev/playlists/models"
)

var (
	// ErrAuthorization сигнализирует об ошибке авторизации (401).
	ErrAuthorization = errors.New("ошибка авторизации")
	// ErrNoToken возвращается при вызове приватного метода до входа.
	ErrNoToken = errors.New("токен аутентификации отсутствует")
)

// APIError - ошибка, возвращенная сервером с кодом статуса и сообщением.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
	}
	return fmt.Sprintf("ошибка сервера: статус %d: %s", e.StatusCode, e.Message)
}

// Client определяет интерфейс для взаимодействия с API сервера плейлистов.
type Client interface {
	// Register регистрирует нового пользователя и возвращает его ID.
	Register(ctx context.Context, email, password string) (int64, error)
	// Login аутентифицирует пользователя, сохраняет и возвращает JWT токен.
	Login(ctx context.Context, email, password string) (string, error)
	// SetAuthToken устанавливает JWT токен для аутентифицированных запросов.
	SetAuthToken(token string)

	Me(ctx context.Context) (*models.Profile, error)

	CreatePlaylist(ctx context.Context, req models.CreatePlaylistRequest) (*models.Playlist, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	ListSharedWithMe(ctx context.Context) ([]models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (*models.PlaylistDetail, error)
	UpdatePlaylist(ctx context.Context, id int64, req models.UpdatePlaylistRequest) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error
	// UploadCover загружает обложку плейлиста (поле формы "cover").
	UploadCover(ctx context.Context, id int64, filename string, data io.Reader) (*models.Playlist, error)

	AddSong(ctx context.Context, playlistID int64, req models.AddSongRequest) (*models.Song, error)
	ListSongs(ctx context.Context, playlistID int64) ([]models.Song, error)
	SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error)

	SharePlaylist(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error)
	ListSharedUsers(ctx context.Context, playlistID int64) ([]string, error)
}

// httpClient реализует интерфейс Client для взаимодействия с сервером по HTTP.
type httpClient struct {
	baseURL    string       // Базовый URL сервера, например "http://localhost:3000"
	httpClient *http.Client // HTTP клиент для выполнения запросов
	authToken  string       // JWT токен для аутентифицированных запросов
}

// NewHTTPClient создает новый экземпляр API клиента.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *httpClient) SetAuthToken(token string) {
	c.authToken = token
}

// Register отправляет запрос на регистрацию на сервер.
func (c *httpClient) Register(ctx context.Context, email, password string) (int64, error) {
	var resp models.RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", false,
		models.RegisterRequest{Email: email, Password: password}, http.StatusCreated, &resp)
	if err != nil {
		return 0, fmt.Errorf("регистрация: %w", err)
	}
	return resp.UserID, nil
}

// Login отправляет запрос на вход на сервер и сохраняет токен.
func (c *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", false,
		models.LoginRequest{Email: email, Password: password}, http.StatusOK, &resp)
	if err != nil {
		return "", fmt.Errorf("вход: %w", err)
	}
	if resp.Token == "" {
		return "", errors.New("сервер вернул пустой токен")
	}
	c.authToken = resp.Token
	return resp.Token, nil
}

func (c *httpClient) Me(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/me", true, nil, http.StatusOK, &profile); err != nil {
		return nil, fmt.Errorf("получение профиля: %w", err)
	}
	return &profile, nil
}

func (c *httpClient) CreatePlaylist(
	ctx context.Context,
	req models.CreatePlaylistRequest,
) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := c.doJSON(ctx, http.MethodPost, "/playlists", true, req, http.StatusOK, &playlist); err != nil {
		return nil, fmt.Errorf("создание плейлиста: %w", err)
	}
	return &playlist, nil
}

func (c *httpClient) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var resp models.PlaylistsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/playlists", true, nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("получение плейлистов: %w", err)
	}
	return resp.Playlists, nil
}

func (c *httpClient) ListSharedWithMe(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := c.doJSON(ctx, http.MethodGet, "/playlists/shared-with-me", true, nil, http.StatusOK, &playlists)
	if err != nil {
		return nil, fmt.Errorf("получение доступных плейлистов: %w", err)
	}
	return playlists, nil
}

func (c *httpClient) GetPlaylist(ctx context.Context, id int64) (*models.PlaylistDetail, error) {
	var detail models.PlaylistDetail
	if err := c.doJSON(ctx, http.MethodGet, playlistPath(id), true, nil, http.StatusOK, &detail); err != nil {
		return nil, fmt.Errorf("получение плейлиста %d: %w", id, err)
	}
	return &detail, nil
}

func (c *httpClient) UpdatePlaylist(
	ctx context.Context,
	id int64,
	req models.UpdatePlaylistRequest,
) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := c.doJSON(ctx, http.MethodPatch, playlistPath(id), true, req, http.StatusOK, &playlist); err != nil {
		return nil, fmt.Errorf("обновление плейлиста %d: %w", id, err)
	}
	return &playlist, nil
}

func (c *httpClient) DeletePlaylist(ctx context.Context, id int64) error {
	if err := c.doJSON(ctx, http.MethodDelete, playlistPath(id), true, nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("удаление плейлиста %d: %w", id, err)
	}
	return nil
}

// UploadCover отправляет обложку как multipart/form-data.
func (c *httpClient) UploadCover(
	ctx context.Context,
	id int64,
	filename string,
	data io.Reader,
) (*models.Playlist, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("cover", filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования формы: %w", err)
	}
	if _, err = io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("ошибка чтения файла обложки: %w", err)
	}
	if err = form.Close(); err != nil {
		return nil, fmt.Errorf("ошибка формирования формы: %w", err)
	}

	var resp models.CoverResponse
	err = c.do(ctx, http.MethodPatch, playlistPath(id)+"/cover", true,
		body, form.FormDataContentType(), http.StatusOK, &resp)
	if err != nil {
		return nil, fmt.Errorf("загрузка обложки плейлиста %d: %w", id, err)
	}
	return &resp.Playlist, nil
}

func (c *httpClient) AddSong(ctx context.Context, playlistID int64, req models.AddSongRequest) (*models.Song, error) {
	var resp models.AddSongResponse
	err := c.doJSON(ctx, http.MethodPost, playlistPath(playlistID)+"/songs", true, req, http.StatusCreated, &resp)
	if err != nil {
		return nil, fmt.Errorf("добавление песни: %w", err)
	}
	return &resp.Song, nil
}

func (c *httpClient) ListSongs(ctx context.Context, playlistID int64) ([]models.Song, error) {
	var songs []models.Song
	err := c.doJSON(ctx, http.MethodGet, playlistPath(playlistID)+"/songs", true, nil, http.StatusOK, &songs)
	if err != nil {
		return nil, fmt.Errorf("получение песен плейлиста %d: %w", playlistID, err)
	}
	return songs, nil
}

// SearchSongs ищет песни по подстроке названия и/или исполнителя. Пустые фильтры не передаются.
func (c *httpClient) SearchSongs(ctx context.Context, name, artist string) ([]models.Song, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if artist != "" {
		query.Set("artist", artist)
	}
	path := "/songs/search"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var songs []models.Song
	if err := c.doJSON(ctx, http.MethodGet, path, true, nil, http.StatusOK, &songs); err != nil {
		return nil, fmt.Errorf("поиск песен: %w", err)
	}
	return songs, nil
}

func (c *httpClient) SharePlaylist(ctx context.Context, playlistID, userID int64) (*models.SharedPlaylist, error) {
	var resp models.ShareResponse
	err := c.doJSON(ctx, http.MethodPost, playlistPath(playlistID)+"/share", true,
		models.ShareRequest{UserID: userID}, http.StatusOK, &resp)
	if err != nil {
		return nil, fmt.Errorf("предоставление доступа: %w", err)
	}
	return &resp.Shared, nil
}

func (c *httpClient) ListSharedUsers(ctx context.Context, playlistID int64) ([]string, error) {
	var emails []string
	err := c.doJSON(ctx, http.MethodGet, playlistPath(playlistID)+"/shared-users", true, nil, http.StatusOK, &emails)
	if err != nil {
		return nil, fmt.Errorf("получение пользователей с доступом: %w", err)
	}
	return emails, nil
}

func playlistPath(id int64) string {
	return "/playlists/" + strconv.FormatInt(id, 10)
}

// doJSON кодирует payload (если он есть) в JSON и выполняет запрос.
func (c *httpClient) doJSON(
	ctx context.Context,
	method, path string,
	auth bool,
	payload interface{},
	wantStatus int,
	out interface{},
) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("ошибка кодирования запроса: %w", err)
		}
		body = bytes.NewReader(jsonData)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, auth, body, contentType, wantStatus, out)
}

func (c *httpClient) do(
	ctx context.Context,
	method, path string,
	auth bool,
	body io.Reader,
	contentType string,
	wantStatus int,
	out interface{},
) error {
	if auth && c.authToken == "" {
		return ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthorization
	}
	if resp.StatusCode != wantStatus {
		return readAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка декодирования ответа: %w", err)
	}
	return nil
}

// readAPIError извлекает сообщение об ошибке из тела ответа {"message": "..."}.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var msg models.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
		apiErr.Message = msg.Message
	}
	return apiErr
}
