package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusInput переводит фокус на поле idx, снимая его с остальных.
func focusInput(inputs []*textinput.Model, idx int) {
	for i, in := range inputs {
		if i == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// handleInputs обрабатывает ввод в группе полей: Tab/Shift+Tab переключают фокус,
// Enter переходит к следующему полю, а на последнем вызывает onSubmit. Esc возвращает на previousState.
func (m *model) handleInputs(
	msg tea.Msg,
	inputs []*textinput.Model,
	focusedIdx *int,
	onSubmit func() tea.Cmd,
	previousState screenState,
) (tea.Model, tea.Cmd) {
	n := len(inputs)
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			focusInput(inputs, -1)
			m.state = previousState
			m.err = nil
			return m, tea.ClearScreen
		case keyTab:
			*focusedIdx = (*focusedIdx + 1) % n
			focusInput(inputs, *focusedIdx)
			return m, textinput.Blink
		case keyShiftTab:
			*focusedIdx = (*focusedIdx + n - 1) % n
			focusInput(inputs, *focusedIdx)
			return m, textinput.Blink
		case keyEnter:
			if *focusedIdx < n-1 {
				*focusedIdx++
				focusInput(inputs, *focusedIdx)
				return m, textinput.Blink
			}
			return m, onSubmit()
		}
	}

	// Обновляем активное поле ввода
	var cmd tea.Cmd
	active := inputs[*focusedIdx]
	*active, cmd = active.Update(msg)
	return m, cmd
}

// formInputPtrs возвращает указатели на поля текущей формы.
func (m *model) formInputPtrs() []*textinput.Model {
	ptrs := make([]*textinput.Model, len(m.formInputs))
	for i := range m.formInputs {
		ptrs[i] = &m.formInputs[i]
	}
	return ptrs
}
