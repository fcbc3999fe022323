package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateChoiceScreen обрабатывает экран выбора "Войти или Зарегистрироваться?".
func (m *model) updateChoiceScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit:
			return m, tea.Quit
		case keyEnter:
			selected, isChoice := m.choiceMenu.SelectedItem().(choiceItem)
			if !isChoice {
				return m, nil
			}
			m.err = nil
			m.credentialsFocusField = 0
			if selected.title == "Войти" {
				m.state = loginScreen
				return m, tea.Batch(focusInput(m.loginInputs, loginFieldUsername), tea.ClearScreen)
			}
			m.state = registerScreen
			return m, tea.Batch(focusInput(m.registerInputs, registerFieldUsername), tea.ClearScreen)
		}
	}

	var cmd tea.Cmd
	m.choiceMenu, cmd = m.choiceMenu.Update(msg)
	return m, cmd
}
