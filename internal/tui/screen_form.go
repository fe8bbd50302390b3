package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/playlists/models"
)

// updateFormScreen обрабатывает формы создания плейлиста, добавления песни и предоставления доступа.
func (m *model) updateFormScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	previous := playlistDetailScreen
	if m.state == playlistCreateScreen {
		previous = playlistListScreen
	}
	return m.handleInputs(msg, m.formInputPtrs(), &m.formFocusedField, m.submitForm, previous)
}

// submitForm проверяет значения формы и запускает соответствующий запрос.
func (m *model) submitForm() tea.Cmd {
	values := make([]string, len(m.formInputs))
	for i, in := range m.formInputs {
		values[i] = strings.TrimSpace(in.Value())
	}

	switch m.state {
	case playlistCreateScreen:
		if values[0] == "" || values[1] == "" {
			m.err = errEmptyFields
			return nil
		}
		m.err = nil
		return m.createPlaylistCmd(models.CreatePlaylistRequest{
			Name:        values[0],
			Description: values[1],
			IsSecret:    isYes(values[2]),
		})
	case songAddScreen:
		if values[0] == "" || values[1] == "" {
			m.err = errEmptyFields
			return nil
		}
		m.err = nil
		return m.addSongCmd(m.detail.ID, models.AddSongRequest{Name: values[0], Artist: values[1], URL: values[2]})
	case shareScreen:
		m.err = nil
		return m.shareCmd(m.detail.ID, values[0])
	default:
		return nil
	}
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}

// viewForm отображает поля текущей формы.
func (m *model) viewForm(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	if m.detail != nil && m.state != playlistCreateScreen {
		b.WriteString(subtleStyle.Render("Плейлист: "+m.detail.Name) + "\n")
	}
	b.WriteString("\n")
	for _, in := range m.formInputs {
		b.WriteString(in.View() + "\n")
	}
	return b.String()
}
