package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/playlists/client/api"
)

// Update обрабатывает входящие сообщения.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// == Глобальные сообщения (не зависят от экрана) ==
	case tea.WindowSizeMsg:
		h, v := m.docStyle.GetFrameSize()
		m.playlistList.SetSize(msg.Width-h, msg.Height-v-inputOffset)
		return m, nil

	case errMsg:
		return m.handleErrorMsg(msg)

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case registerSuccessMsg:
		slog.Info("Пользователь зарегистрирован", "id", msg.userID)
		return m.handleRegisterSuccess()

	case loginSuccessMsg:
		return m.handleLoginSuccess(msg)

	case profileLoadedMsg:
		return m.handleProfileLoaded(msg)

	case playlistLoadedMsg:
		m.detail = msg.detail
		m.err = nil
		m.state = playlistDetailScreen
		return m, tea.ClearScreen

	case playlistCreatedMsg:
		m.state = playlistListScreen
		return m, tea.Batch(m.loadProfileCmd(), m.setStatusMessage("Плейлист '"+msg.playlist.Name+"' создан"))

	case playlistDeletedMsg:
		m.state = playlistListScreen
		m.detail = nil
		return m, tea.Batch(m.loadProfileCmd(), m.setStatusMessage("Плейлист удален"), tea.ClearScreen)

	case songAddedMsg:
		return m, tea.Batch(m.loadPlaylistCmd(m.detail.ID), m.setStatusMessage("Песня '"+msg.song.Name+"' добавлена"))

	case playlistSharedMsg:
		return m, tea.Batch(m.loadPlaylistCmd(msg.shared.PlaylistID), m.setStatusMessage("Доступ предоставлен"))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// == Обработка в зависимости от состояния ==
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.updateLoginRegisterChoiceScreen(msg)
	case loginScreen:
		return m.updateLoginScreen(msg)
	case registerScreen:
		return m.updateRegisterScreen(msg)
	case playlistListScreen:
		return m.updatePlaylistListScreen(msg)
	case playlistDetailScreen:
		return m.updatePlaylistDetailScreen(msg)
	case playlistCreateScreen, songAddScreen, shareScreen:
		return m.updateFormScreen(msg)
	default:
		return m, nil
	}
}

// handleErrorMsg показывает ошибку; при истекшей сессии возвращает к экрану входа.
func (m *model) handleErrorMsg(msg errMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	slog.Error("Ошибка запроса к серверу", "error", msg.err)
	if errors.Is(msg.err, api.ErrAuthorization) && m.state != loginScreen {
		m.apiClient.SetAuthToken("")
		m.loginStatus = statusNotLoggedIn
		m.detail = nil
		m.state = loginRegisterChoiceScreen
		return m, tea.ClearScreen
	}
	return m, nil
}
