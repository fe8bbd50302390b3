package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updatePlaylistDetailScreen обрабатывает клавиши на экране деталей плейлиста.
// Изменять плейлист может только владелец, остальным экран доступен только для чтения.
func (m *model) updatePlaylistDetailScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyBack, keyEsc:
		m.state = playlistListScreen
		m.detail = nil
		m.err = nil
		return m, tea.Batch(m.loadProfileCmd(), tea.ClearScreen)
	case keyAdd:
		if m.isOwner() {
			m.formInputs = initFormInputs("Название песни", "Исполнитель", "Ссылка (необязательно)")
			m.formFocusedField = 0
			m.err = nil
			m.state = songAddScreen
			return m, tea.ClearScreen
		}
	case keyShare:
		if m.isOwner() {
			m.formInputs = initFormInputs("ID пользователя")
			m.formFocusedField = 0
			m.err = nil
			m.state = shareScreen
			return m, tea.ClearScreen
		}
	case keyDelete:
		if m.isOwner() {
			return m, m.deletePlaylistCmd(m.detail.ID)
		}
	case keyQuit:
		return m, tea.Quit
	}
	return m, nil
}

// viewPlaylistDetailScreen отображает плейлист с песнями и списком пользователей с доступом.
func (m *model) viewPlaylistDetailScreen() string {
	if m.detail == nil {
		return "Плейлист не загружен"
	}
	d := m.detail
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Name) + "\n")
	b.WriteString(d.Description + "\n\n")
	fmt.Fprintf(&b, "Создатель: %s\n", d.Creator.Email)
	if d.IsSecret {
		b.WriteString("Секретный: да\n")
	}
	if d.CoverImageURL != "" {
		fmt.Fprintf(&b, "Обложка: %s\n", d.CoverImageURL)
	}
	if !m.isOwner() {
		b.WriteString(accentStyle.Render("Доступ только для чтения") + "\n")
	}

	fmt.Fprintf(&b, "\nПесни (%d):\n", len(d.Songs))
	b.WriteString(formatSongs(d.Songs))

	if len(d.SharedWith) > 0 {
		emails := make([]string, 0, len(d.SharedWith))
		for _, u := range d.SharedWith {
			emails = append(emails, u.Email)
		}
		b.WriteString("\nДоступ предоставлен: " + strings.Join(emails, ", ") + "\n")
	}
	return b.String()
}
