package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// syncTodoList перестраивает элементы списка из зеркала контроллера.
func (m *model) syncTodoList() tea.Cmd {
	todos := m.todoCtrl.Todos()
	items := make([]list.Item, 0, len(todos))
	for _, todo := range todos {
		items = append(items, todoItem{todo: todo})
	}
	return m.todoList.SetItems(items)
}

// updateTodoListScreen обрабатывает сообщения для экрана списка задач.
func (m *model) updateTodoListScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit:
			return m, tea.Quit
		case keyAdd:
			m.addTitleInput.SetValue("")
			m.addTitleInput.Focus()
			m.previousScreenState = todoListScreen
			m.state = todoAddScreen
			slog.Info("Переход к добавлению новой задачи")
			return m, tea.ClearScreen
		case keyEdit:
			item, selected := m.selectedTodo()
			if !selected {
				return m, nil
			}
			todoCopy := item.todo
			m.editingTodo = &todoCopy
			m.editTitleInput.SetValue(todoCopy.Title)
			m.editTitleInput.Focus()
			m.state = todoEditScreen
			slog.Info("Переход к редактированию задачи", "id", todoCopy.ID)
			return m, tea.ClearScreen
		case keyToggle:
			item, selected := m.selectedTodo()
			if !selected {
				return m, nil
			}
			toggled := item.todo
			toggled.Completed = !toggled.Completed
			newModel, statusCmd := m.setStatusMessage("Сохранение...")
			return newModel, tea.Batch(m.makeUpdateTodoCmd(toggled), statusCmd)
		case keyDelete:
			item, selected := m.selectedTodo()
			if !selected {
				return m, nil
			}
			newModel, statusCmd := m.setStatusMessage("Удаление...")
			return newModel, tea.Batch(m.makeDeleteTodoCmd(item.todo.ID), statusCmd)
		case keySearch:
			m.searchInput.SetValue(m.searchText)
			m.searchInput.Focus()
			m.state = searchInputScreen
			return m, tea.ClearScreen
		case keyFilter:
			m.cycleCompletedFilter()
			newModel, statusCmd := m.setStatusMessage("Фильтр: " + m.completedFilterLabel())
			return newModel, tea.Batch(m.makeFetchTodosCmd(m.currentFilter()), statusCmd)
		}
	}

	var cmd tea.Cmd
	m.todoList, cmd = m.todoList.Update(msg)
	return m, cmd
}

// selectedTodo возвращает выбранный элемент списка задач.
func (m *model) selectedTodo() (todoItem, bool) {
	item, ok := m.todoList.SelectedItem().(todoItem)
	return item, ok
}

// cycleCompletedFilter переключает трехзначный фильтр состояния:
// все -> выполненные -> невыполненные -> все.
func (m *model) cycleCompletedFilter() {
	switch {
	case m.completedFilter == nil:
		completed := true
		m.completedFilter = &completed
	case *m.completedFilter:
		notCompleted := false
		m.completedFilter = &notCompleted
	default:
		m.completedFilter = nil
	}
}

// completedFilterLabel возвращает отображаемое название текущего фильтра.
func (m *model) completedFilterLabel() string {
	switch {
	case m.completedFilter == nil:
		return "все"
	case *m.completedFilter:
		return "выполненные"
	default:
		return "невыполненные"
	}
}

// viewTodoListScreen отображает экран списка задач с текущим
// фильтром и именем пользователя.
func (m *model) viewTodoListScreen() string {
	var b strings.Builder

	header := ""
	if user := m.authSvc.CurrentUser(); user != nil {
		header = fmt.Sprintf("Пользователь: %s", user.Username)
	}
	filterParts := []string{"фильтр: " + m.completedFilterLabel()}
	if m.searchText != "" {
		filterParts = append(filterParts, fmt.Sprintf("поиск: %q", m.searchText))
	}
	if header != "" {
		header += " | "
	}
	header += strings.Join(filterParts, ", ")

	b.WriteString(header + "\n\n")
	b.WriteString(m.todoList.View())
	return b.String()
}
