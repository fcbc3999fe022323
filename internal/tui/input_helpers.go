package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusInput переводит фокус на поле с индексом idx, снимая его с остальных.
func focusInput(inputs []textinput.Model, idx int) tea.Cmd {
	for i := range inputs {
		if i == idx {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return textinput.Blink
}

// handleFieldsKeys обрабатывает Tab, Shift+Tab и Enter в группе полей ввода.
// Enter на последнем поле вызывает onEnter; на остальных — переводит фокус
// дальше. Возвращает флаг, указывающий, была ли клавиша обработана.
func (m *model) handleFieldsKeys(
	keyMsg tea.KeyMsg,
	inputs []textinput.Model,
	focusedFieldIdx *int,
	onEnter func() (tea.Model, tea.Cmd),
) (tea.Model, tea.Cmd, bool) {
	total := len(inputs)
	switch keyMsg.String() {
	case keyTab:
		*focusedFieldIdx = (*focusedFieldIdx + 1) % total
		return m, focusInput(inputs, *focusedFieldIdx), true
	case keyShiftTab:
		*focusedFieldIdx = (*focusedFieldIdx + total - 1) % total
		return m, focusInput(inputs, *focusedFieldIdx), true
	case keyEnter:
		if *focusedFieldIdx < total-1 {
			*focusedFieldIdx++
			return m, focusInput(inputs, *focusedFieldIdx), true
		}
		// Активно последнее поле - вызываем действие
		newModel, cmd := onEnter()
		return newModel, cmd, true
	default:
		return m, nil, false
	}
}

// handleFieldsInput обрабатывает ввод в группе полей: переключение фокуса,
// действие по Enter на последнем поле и возврат по Esc.
func (m *model) handleFieldsInput(
	msg tea.Msg,
	inputs []textinput.Model,
	focusedFieldIdx *int,
	onEnter func() (tea.Model, tea.Cmd),
	previousState screenState,
) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Сначала обрабатываем Esc
		if keyMsg.String() == keyEsc {
			m.state = previousState
			m.err = nil
			for i := range inputs {
				inputs[i].Blur()
			}
			return m, tea.ClearScreen
		}

		newModel, keyCmd, handled := m.handleFieldsKeys(keyMsg, inputs, focusedFieldIdx, onEnter)
		if handled {
			return newModel, keyCmd
		}
	}

	// Остальные сообщения уходят в активное поле ввода.
	var cmd tea.Cmd
	idx := *focusedFieldIdx
	inputs[idx], cmd = inputs[idx].Update(msg)
	return m, cmd
}
