package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// updateLoginRegisterChoiceScreen обрабатывает выбор между входом и регистрацией.
func (m *model) updateLoginRegisterChoiceScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "r", "R":
			m.state = registerScreen
			m.loginRegisterFocusedField = 0
			focusInput([]*textinput.Model{&m.registerEmailInput, &m.registerPasswordInput}, 0)
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)
		case "l", "L":
			m.state = loginScreen
			m.loginRegisterFocusedField = 0
			focusInput([]*textinput.Model{&m.loginEmailInput, &m.loginPasswordInput}, 0)
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)
		case keyQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

// updateLoginScreen обрабатывает ввод данных для входа.
func (m *model) updateLoginScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleInputs(
		msg,
		[]*textinput.Model{&m.loginEmailInput, &m.loginPasswordInput},
		&m.loginRegisterFocusedField,
		func() tea.Cmd {
			email := strings.TrimSpace(m.loginEmailInput.Value())
			password := m.loginPasswordInput.Value()
			if email == "" || password == "" {
				m.err = errEmptyFields
				return nil
			}
			m.err = nil
			m.email = email
			return tea.Batch(m.makeLoginCmd(email, password), m.setStatusMessage("Выполняется вход..."))
		},
		loginRegisterChoiceScreen,
	)
}

// updateRegisterScreen обрабатывает ввод данных для регистрации.
func (m *model) updateRegisterScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleInputs(
		msg,
		[]*textinput.Model{&m.registerEmailInput, &m.registerPasswordInput},
		&m.loginRegisterFocusedField,
		func() tea.Cmd {
			email := strings.TrimSpace(m.registerEmailInput.Value())
			password := m.registerPasswordInput.Value()
			if email == "" || password == "" {
				m.err = errEmptyFields
				return nil
			}
			m.err = nil
			return tea.Batch(m.makeRegisterCmd(email, password), m.setStatusMessage("Выполняется регистрация..."))
		},
		loginRegisterChoiceScreen,
	)
}

// handleRegisterSuccess переводит на экран входа с уже заполненным email.
func (m *model) handleRegisterSuccess() (tea.Model, tea.Cmd) {
	m.loginEmailInput.SetValue(m.registerEmailInput.Value())
	m.registerPasswordInput.SetValue("")
	m.state = loginScreen
	m.loginRegisterFocusedField = 1
	focusInput([]*textinput.Model{&m.loginEmailInput, &m.loginPasswordInput}, 1)
	return m, tea.Batch(textinput.Blink, m.setStatusMessage("Регистрация успешна, выполните вход"))
}

// handleLoginSuccess сохраняет токен и загружает плейлисты пользователя.
func (m *model) handleLoginSuccess(msg loginSuccessMsg) (tea.Model, tea.Cmd) {
	m.apiClient.SetAuthToken(msg.token)
	m.loginPasswordInput.SetValue("")
	m.loginStatus = "Выполнен как " + m.email
	m.state = playlistListScreen
	return m, tea.Batch(m.loadProfileCmd(), tea.ClearScreen)
}

// viewLoginRegisterChoiceScreen отображает экран выбора входа или регистрации.
func (m *model) viewLoginRegisterChoiceScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Плейлисты") + "\n\n")
	b.WriteString("Сервер: " + m.serverURL + "\n\n")
	b.WriteString("Выберите действие:\n")
	b.WriteString("- Регистрация нового пользователя " + accentStyle.Render("(R)") + "\n")
	b.WriteString("- Вход с существующими данными " + accentStyle.Render("(L)") + "\n")
	return b.String()
}

// viewCredentialsScreen отображает общий экран ввода данных (email/пароль).
func (m *model) viewCredentialsScreen(title string, emailInput, passwordInput textinput.Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(emailInput.View() + "\n")
	b.WriteString(passwordInput.View() + "\n")
	return b.String()
}
