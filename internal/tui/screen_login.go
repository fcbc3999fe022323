package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateLoginScreen обрабатывает ввод данных для входа.
func (m *model) updateLoginScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	loginAction := func() (tea.Model, tea.Cmd) {
		username := m.loginInputs[loginFieldUsername].Value()
		password := m.loginInputs[loginFieldPassword].Value()
		m.err = nil
		cmd := m.makeLoginCmd(username, password)
		newModel, statusCmd := m.setStatusMessage("Выполняется вход...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	return m.handleFieldsInput(
		msg,
		m.loginInputs,
		&m.credentialsFocusField,
		loginAction,
		loginRegisterChoiceScreen, // Возвращаемся к выбору при Esc
	)
}

// viewLoginScreen отображает экран ввода данных для входа.
func (m *model) viewLoginScreen() string {
	return m.viewCredentialsScreen("Вход в учетную запись", m.loginInputs)
}
