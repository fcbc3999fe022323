package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// viewCredentialsScreen отображает общий экран ввода учетных данных.
func (m *model) viewCredentialsScreen(title string, inputs []textinput.Model) string {
	var b strings.Builder

	// Определяем стили здесь, чтобы избежать дублирования в каждом вызывающем месте
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94")) // Красный для ошибок

	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range inputs {
		b.WriteString(inputs[i].View() + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
