package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// updatePlaylistListScreen обрабатывает сообщения для экрана списка плейлистов.
func (m *model) updatePlaylistListScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Во время фильтрации все клавиши принадлежат списку
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.playlistList.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case keyQuit:
			return m, tea.Quit
		case keyEnter:
			if item, isPlaylist := m.playlistList.SelectedItem().(playlistItem); isPlaylist {
				slog.Info("Открытие плейлиста", "id", item.playlist.ID)
				return m, m.loadPlaylistCmd(item.playlist.ID)
			}
			return m, nil
		case keyAdd:
			m.formInputs = initFormInputs("Название", "Описание", "Секретный? (y/n)")
			m.formFocusedField = 0
			m.err = nil
			m.state = playlistCreateScreen
			return m, tea.ClearScreen
		case keyRefresh:
			return m, m.loadProfileCmd()
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

// handleProfileLoaded заполняет список плейлистами из профиля.
func (m *model) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	m.userID = msg.profile.ID
	m.email = msg.profile.Email
	m.err = nil
	items := playlistItems(msg.profile.Playlists, msg.profile.SharedPlaylists)
	cmd := m.playlistList.SetItems(items)
	m.playlistList.Title = fmt.Sprintf("Плейлисты %s (%d)", m.email, len(items))
	slog.Debug("Плейлисты загружены",
		"own", len(msg.profile.Playlists), "shared", len(msg.profile.SharedPlaylists))
	return m, cmd
}
