package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/raibhavesh/todo-app-linity/internal/auth"
	"github.com/raibhavesh/todo-app-linity/internal/session"
	"github.com/raibhavesh/todo-app-linity/internal/todos"
	"github.com/raibhavesh/todo-app-linity/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	loginRegisterChoiceScreen screenState = iota // Экран выбора "Войти или Зарегистрироваться?"
	loginScreen                                  // Экран ввода данных для входа
	registerScreen                               // Экран ввода данных для регистрации
	todoListScreen                               // Экран списка задач
	todoAddScreen                                // Экран добавления новой задачи
	todoEditScreen                               // Экран редактирования задачи
	searchInputScreen                            // Экран ввода строки поиска
)

// Константы для TUI.
const (
	defaultListWidth  = 80 // Стандартная ширина терминала для списка
	defaultListHeight = 24 // Стандартная высота терминала для списка
	inputWidthOffset  = 4  // Отступ для полей ввода
	listHeightOffset  = 4  // Высота заголовка, строки помощи и статуса

	keyEnter    = "enter"
	keyQuit     = "q"
	keyEsc      = "esc"
	keyEdit     = "e"
	keyAdd      = "a"
	keyDelete   = "d"
	keyToggle   = " " // Пробел переключает состояние выполнения
	keySearch   = "/"
	keyFilter   = "f"
	keyLogout   = "ctrl+l"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// Глифы состояния выполнения в списке.
const (
	glyphDone    = "[x]"
	glyphPending = "[ ]"
)

// todoItem представляет элемент списка задач.
// Реализует интерфейс list.Item.
type todoItem struct {
	todo models.Todo
}

func (i todoItem) Title() string {
	glyph := glyphPending
	if i.todo.Completed {
		glyph = glyphDone
	}
	return fmt.Sprintf("%s %s", glyph, i.todo.Title)
}

func (i todoItem) Description() string {
	if i.todo.Completed {
		return fmt.Sprintf("#%d | выполнена", i.todo.ID)
	}
	return fmt.Sprintf("#%d | не выполнена", i.todo.ID)
}

func (i todoItem) FilterValue() string { return i.todo.Title }

// choiceItem — пункт меню на экране выбора входа/регистрации.
type choiceItem struct {
	title string
	desc  string
}

func (i choiceItem) Title() string       { return i.title }
func (i choiceItem) Description() string { return i.desc }
func (i choiceItem) FilterValue() string { return i.title }

// Индексы полей на экране входа.
const (
	loginFieldUsername = iota
	loginFieldPassword
	numLoginFields
)

// Индексы полей на экране регистрации.
const (
	registerFieldUsername = iota
	registerFieldPassword
	registerFieldConfirm
	numRegisterFields
)

// model представляет состояние TUI приложения.
type model struct {
	state               screenState
	previousScreenState screenState // Предыдущее состояние (для возврата по Esc)

	serverURL string
	session   *session.Store    // Хранилище сессии (токен + пользователь)
	authSvc   *auth.Service     // Сервис аутентификации
	todoCtrl  *todos.Controller // Контроллер списка задач

	// Экран выбора и список задач.
	choiceMenu list.Model
	todoList   list.Model

	// Поля ввода учетных данных.
	loginInputs           []textinput.Model // Имя, пароль
	registerInputs        []textinput.Model // Имя, пароль, подтверждение пароля
	credentialsFocusField int               // Индекс активного поля на экранах входа/регистрации

	// Поля ввода задач и поиска.
	addTitleInput  textinput.Model
	editTitleInput textinput.Model
	editingTodo    *models.Todo // Копия задачи, открытой на редактирование
	searchInput    textinput.Model

	// Текущий фильтр выборки. Отдельные поля, а не models.TodoFilter,
	// чтобы строка поиска правилась независимо от фильтра состояния.
	completedFilter *bool  // nil — все задачи
	searchText      string // "" — без поиска

	savingStatus string // Статус операции (отображается внизу)
	err          error  // Последняя ошибка для отображения

	docStyle lipgloss.Style
	width    int
	height   int
}

// currentFilter собирает фильтр выборки из состояния модели.
func (m *model) currentFilter() models.TodoFilter {
	return models.TodoFilter{
		Completed: m.completedFilter,
		Search:    m.searchText,
	}
}

// Сообщение для очистки статуса.
type clearStatusMsg struct{}

// errMsg — сообщение об ошибке вне конкретной операции.
type errMsg struct {
	err error
}
