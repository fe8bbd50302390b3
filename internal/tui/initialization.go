package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Константы, используемые при инициализации.
const (
	initPasswordCharLimit = 156
	initPasswordWidth     = 20
	initEmailCharLimit    = 254
	initEmailWidth        = 30
	initFieldCharLimit    = 256
	initFieldWidth        = 50
)

func initEmailInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Email"
	ti.CharLimit = initEmailCharLimit
	ti.Width = initEmailWidth
	return ti
}

func initPasswordInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Пароль"
	ti.CharLimit = initPasswordCharLimit
	ti.Width = initPasswordWidth
	ti.EchoMode = textinput.EchoPassword
	return ti
}

// initFormInputs создает поля формы с заданными плейсхолдерами, фокус на первом.
func initFormInputs(placeholders ...string) []textinput.Model {
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = initFieldCharLimit
		ti.Width = initFieldWidth
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return inputs
}

// initPlaylistList инициализирует основной компонент списка для плейлистов.
func initPlaylistList() list.Model {
	delegate := list.NewDefaultDelegate()
	// Настраиваем цвета для лучшей видимости
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("212")).
		BorderLeftForeground(lipgloss.Color("212"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("240")).
		BorderLeftForeground(lipgloss.Color("212"))

	l := list.New([]list.Item{}, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Плейлисты"
	l.SetShowHelp(false) // Мы переопределяем справку
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}
