package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateRegisterScreen обрабатывает ввод данных для регистрации.
func (m *model) updateRegisterScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	registerAction := func() (tea.Model, tea.Cmd) {
		username := m.registerInputs[registerFieldUsername].Value()
		password := m.registerInputs[registerFieldPassword].Value()
		confirm := m.registerInputs[registerFieldConfirm].Value()
		m.err = nil
		cmd := m.makeSignupCmd(username, password, confirm)
		newModel, statusCmd := m.setStatusMessage("Выполняется регистрация...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	return m.handleFieldsInput(
		msg,
		m.registerInputs,
		&m.credentialsFocusField,
		registerAction,
		loginRegisterChoiceScreen, // Возвращаемся к выбору при Esc
	)
}

// viewRegisterScreen отображает экран ввода данных для регистрации.
func (m *model) viewRegisterScreen() string {
	return m.viewCredentialsScreen("Регистрация", m.registerInputs)
}
