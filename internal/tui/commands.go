package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/playlists/models"
)

// requestTimeout ограничивает время одного запроса к серверу.
const requestTimeout = 10 * time.Second

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для API --- //

type loginSuccessMsg struct {
	token string
}

type registerSuccessMsg struct {
	userID int64
}

// profileLoadedMsg содержит профиль пользователя вместе с его плейлистами.
type profileLoadedMsg struct {
	profile *models.Profile
}

type playlistLoadedMsg struct {
	detail *models.PlaylistDetail
}

type playlistCreatedMsg struct {
	playlist *models.Playlist
}

type playlistDeletedMsg struct{}

type songAddedMsg struct {
	song *models.Song
}

type playlistSharedMsg struct {
	shared *models.SharedPlaylist
}

// makeLoginCmd выполняет вход через API.
func (m *model) makeLoginCmd(email, password string) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		token, err := client.Login(ctx, email, password)
		if err != nil {
			return errMsg{err: err}
		}
		return loginSuccessMsg{token: token}
	}
}

// makeRegisterCmd выполняет регистрацию через API.
func (m *model) makeRegisterCmd(email, password string) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		id, err := client.Register(ctx, email, password)
		if err != nil {
			return errMsg{err: err}
		}
		return registerSuccessMsg{userID: id}
	}
}

// loadProfileCmd загружает профиль, свои и доступные плейлисты.
func (m *model) loadProfileCmd() tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		profile, err := client.Me(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return profileLoadedMsg{profile: profile}
	}
}

func (m *model) loadPlaylistCmd(id int64) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := client.GetPlaylist(ctx, id)
		if err != nil {
			return errMsg{err: err}
		}
		return playlistLoadedMsg{detail: detail}
	}
}

func (m *model) createPlaylistCmd(req models.CreatePlaylistRequest) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		playlist, err := client.CreatePlaylist(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return playlistCreatedMsg{playlist: playlist}
	}
}

func (m *model) deletePlaylistCmd(id int64) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := client.DeletePlaylist(ctx, id); err != nil {
			return errMsg{err: err}
		}
		return playlistDeletedMsg{}
	}
}

func (m *model) addSongCmd(playlistID int64, req models.AddSongRequest) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		song, err := client.AddSong(ctx, playlistID, req)
		if err != nil {
			return errMsg{err: err}
		}
		return songAddedMsg{song: song}
	}
}

// shareCmd предоставляет доступ пользователю, ID которого введен в форме.
func (m *model) shareCmd(playlistID int64, rawUserID string) tea.Cmd {
	client := m.apiClient
	return func() tea.Msg {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			return errMsg{err: errInvalidUserID}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		shared, err := client.SharePlaylist(ctx, playlistID, userID)
		if err != nil {
			return errMsg{err: err}
		}
		return playlistSharedMsg{shared: shared}
	}
}
