package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateTodoEditScreen обрабатывает редактирование задачи: название
// правится в поле ввода, состояние выполнения переключается по Ctrl+T,
// Enter отправляет полное представление на сервер.
func (m *model) updateTodoEditScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editingTodo == nil {
		// Сюда можно попасть только через экран списка; подстраховка.
		m.state = todoListScreen
		return m, tea.ClearScreen
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = todoListScreen
			m.err = nil
			m.editingTodo = nil
			m.editTitleInput.Blur()
			return m, tea.ClearScreen
		case "ctrl+t":
			m.editingTodo.Completed = !m.editingTodo.Completed
			return m, nil
		case keyEnter:
			updated := *m.editingTodo
			updated.Title = m.editTitleInput.Value()
			m.err = nil
			m.editingTodo = nil
			m.editTitleInput.Blur()
			m.state = todoListScreen
			newModel, statusCmd := m.setStatusMessage("Сохранение...")
			return newModel, tea.Batch(m.makeUpdateTodoCmd(updated), statusCmd, tea.ClearScreen)
		}
	}

	var cmd tea.Cmd
	m.editTitleInput, cmd = m.editTitleInput.Update(msg)
	return m, cmd
}

// viewTodoEditScreen отображает экран редактирования задачи.
func (m *model) viewTodoEditScreen() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))

	state := "не выполнена"
	if m.editingTodo != nil && m.editingTodo.Completed {
		state = "выполнена"
	}

	b.WriteString(titleStyle.Render("Редактирование задачи") + "\n\n")
	b.WriteString(m.editTitleInput.View() + "\n")
	b.WriteString(fmt.Sprintf("Состояние: %s\n", state))
	b.WriteString(subtleStyle.Render("Ctrl+T: переключить состояние") + "\n")
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
