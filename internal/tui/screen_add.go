package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateTodoAddScreen обрабатывает ввод названия новой задачи.
func (m *model) updateTodoAddScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = todoListScreen
			m.err = nil
			m.addTitleInput.Blur()
			return m, tea.ClearScreen
		case keyEnter:
			title := m.addTitleInput.Value()
			m.err = nil
			m.addTitleInput.Blur()
			m.state = todoListScreen
			newModel, statusCmd := m.setStatusMessage("Создание задачи...")
			return newModel, tea.Batch(m.makeCreateTodoCmd(title), statusCmd, tea.ClearScreen)
		}
	}

	var cmd tea.Cmd
	m.addTitleInput, cmd = m.addTitleInput.Update(msg)
	return m, cmd
}

// viewTodoAddScreen отображает экран добавления задачи.
func (m *model) viewTodoAddScreen() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))

	b.WriteString(titleStyle.Render("Новая задача") + "\n\n")
	b.WriteString(m.addTitleInput.View() + "\n")
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
