package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/maynagashev/playlists/client/api"
	"github.com/maynagashev/playlists/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	loginRegisterChoiceScreen screenState = iota // Экран выбора "Войти или Зарегистрироваться?"
	loginScreen                                  // Экран ввода данных для входа
	registerScreen                               // Экран ввода данных для регистрации
	playlistListScreen                           // Экран списка плейлистов
	playlistDetailScreen                         // Экран деталей плейлиста
	playlistCreateScreen                         // Экран создания плейлиста
	songAddScreen                                // Экран добавления песни
	shareScreen                                  // Экран предоставления доступа
)

// Константы для TUI.
const (
	defaultListWidth  = 80 // Стандартная ширина терминала для списка
	defaultListHeight = 24 // Стандартная высота терминала для списка
	inputOffset       = 4  // Отступ для полей ввода

	keyEnter    = "enter"
	keyQuit     = "q"
	keyBack     = "b"
	keyEsc      = "esc"
	keyAdd      = "a"
	keyRefresh  = "r"
	keyDelete   = "d"
	keyShare    = "s"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"

	statusNotLoggedIn = "Не выполнен"
)

// playlistItem представляет элемент списка плейлистов.
// Реализует интерфейс list.Item.
type playlistItem struct {
	playlist models.Playlist
	shared   bool // Плейлист другого пользователя, доступный только для чтения
}

func (i playlistItem) Title() string {
	title := i.playlist.Name
	if i.playlist.IsSecret {
		title += " [секретный]"
	}
	return title
}

func (i playlistItem) Description() string {
	if i.shared {
		return fmt.Sprintf("Доступ на чтение | %s", i.playlist.Description)
	}
	return i.playlist.Description
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }

// Структура для сообщения об ошибке.
type errMsg struct {
	err error
}

// Сообщение для очистки статуса.
type clearStatusMsg struct{}

// model представляет состояние TUI приложения.
type model struct {
	state     screenState
	apiClient api.Client
	serverURL string
	email     string // Email вошедшего пользователя
	userID    int64

	loginStatus   string
	statusMessage string
	err           error

	loginEmailInput           textinput.Model
	loginPasswordInput        textinput.Model
	registerEmailInput        textinput.Model
	registerPasswordInput     textinput.Model
	loginRegisterFocusedField int

	playlistList list.Model
	detail       *models.PlaylistDetail

	// Поля форм создания плейлиста, добавления песни и предоставления доступа
	formInputs       []textinput.Model
	formFocusedField int

	docStyle lipgloss.Style
}

// isOwner сообщает, принадлежит ли открытый плейлист текущему пользователю.
func (m *model) isOwner() bool {
	return m.detail != nil && m.detail.CreatorID == m.userID
}

// playlistItems собирает элементы списка: сначала свои плейлисты, затем доступные.
func playlistItems(own, shared []models.Playlist) []list.Item {
	items := make([]list.Item, 0, len(own)+len(shared))
	for _, p := range own {
		items = append(items, playlistItem{playlist: p})
	}
	for _, p := range shared {
		items = append(items, playlistItem{playlist: p, shared: true})
	}
	return items
}

// formatSongs форматирует список песен для экрана деталей.
func formatSongs(songs []models.Song) string {
	if len(songs) == 0 {
		return "  (песен пока нет)\n"
	}
	var b strings.Builder
	for i, s := range songs {
		fmt.Fprintf(&b, "  %d. %s - %s", i+1, s.Artist, s.Name)
		if s.URL != "" {
			fmt.Fprintf(&b, " (%s)", s.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
