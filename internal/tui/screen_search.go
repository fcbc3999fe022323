package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateSearchInputScreen обрабатывает ввод строки поиска.
// Поиск выполняется сервером: Enter запускает новую выборку.
func (m *model) updateSearchInputScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.searchInput.Blur()
			m.state = todoListScreen
			return m, tea.ClearScreen
		case keyEnter:
			m.searchText = strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			m.state = todoListScreen
			newModel, statusCmd := m.setStatusMessage("Загрузка списка...")
			return newModel, tea.Batch(m.makeFetchTodosCmd(m.currentFilter()), statusCmd, tea.ClearScreen)
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// viewSearchInputScreen отображает экран ввода строки поиска.
func (m *model) viewSearchInputScreen() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("Поиск задач") + "\n\n")
	b.WriteString(m.searchInput.View() + "\n")
	b.WriteString(subtleStyle.Render("Пустая строка сбрасывает поиск") + "\n")
	return b.String()
}
