// Package tui реализует терминальный клиент сервера плейлистов на bubbletea.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maynagashev/playlists/client/api"
)

const (
	statusMessageTimeout     = 2 * time.Second // Время отображения статусных сообщений
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2
)

var (
	errEmptyFields   = errors.New("заполните обязательные поля")
	errInvalidUserID = errors.New("ID пользователя должен быть положительным числом")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))     // Серый
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))     // Пурпурный
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94")) // Красный для ошибок
)

// helpText - подсказки по клавишам для каждого экрана.
var helpText = map[screenState]string{
	loginRegisterChoiceScreen: "r: регистрация | l: вход | q: выход",
	loginScreen:               "tab: след. поле | enter: войти | esc: назад",
	registerScreen:            "tab: след. поле | enter: зарегистрироваться | esc: назад",
	playlistListScreen:        "enter: открыть | a: новый плейлист | r: обновить | /: фильтр | q: выход",
	playlistDetailScreen:      "a: добавить песню | s: поделиться | d: удалить | b: назад",
	playlistCreateScreen:      "tab: след. поле | enter: создать | esc: отмена",
	songAddScreen:             "tab: след. поле | enter: добавить | esc: отмена",
	shareScreen:               "enter: поделиться | esc: отмена",
}

// newModel создает модель приложения для сервера serverURL.
func newModel(client api.Client, serverURL string) *model {
	return &model{
		state:                 loginRegisterChoiceScreen,
		apiClient:             client,
		serverURL:             serverURL,
		loginStatus:           statusNotLoggedIn,
		loginEmailInput:       initEmailInput(),
		loginPasswordInput:    initPasswordInput(),
		registerEmailInput:    initEmailInput(),
		registerPasswordInput: initPasswordInput(),
		playlistList:          initPlaylistList(),
		docStyle:              lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal),
	}
}

// Start запускает TUI приложение.
func Start(serverURL string) error {
	m := newModel(api.NewHTTPClient(serverURL), serverURL)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("Ошибка при запуске TUI", "error", err)
		return fmt.Errorf("ошибка при запуске TUI: %w", err)
	}
	return nil
}

// Init - команда, выполняемая при запуске приложения.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) tea.Cmd {
	m.statusMessage = status
	return clearStatusCmd(statusMessageTimeout)
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.viewLoginRegisterChoiceScreen()
	case loginScreen:
		return m.viewCredentialsScreen("Вход в учетную запись", m.loginEmailInput, m.loginPasswordInput)
	case registerScreen:
		return m.viewCredentialsScreen("Регистрация", m.registerEmailInput, m.registerPasswordInput)
	case playlistListScreen:
		return m.playlistList.View()
	case playlistDetailScreen:
		return m.viewPlaylistDetailScreen()
	case playlistCreateScreen:
		return m.viewForm("Новый плейлист")
	case songAddScreen:
		return m.viewForm("Добавление песни")
	case shareScreen:
		return m.viewForm("Предоставить доступ на чтение")
	default:
		return "Неизвестное состояние!"
	}
}

// View отображает текущий экран, строку помощи и статус.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.getMainContentView())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	b.WriteString(subtleStyle.Render(helpText[m.state]))
	status := fmt.Sprintf("Сервер: %s | Вход: %s", m.serverURL, m.loginStatus)
	if m.statusMessage != "" {
		status += " | " + m.statusMessage
	}
	b.WriteString("\n" + subtleStyle.Render(status))
	return m.docStyle.Render(b.String())
}
