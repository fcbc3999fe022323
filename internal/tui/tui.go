// Package tui реализует терминальный интерфейс todo-клиента поверх
// bubbletea: экраны входа и регистрации, список задач с поиском и
// фильтром, строка статуса.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raibhavesh/todo-app-linity/internal/api"
	"github.com/raibhavesh/todo-app-linity/internal/auth"
	"github.com/raibhavesh/todo-app-linity/internal/session"
	"github.com/raibhavesh/todo-app-linity/internal/todos"
)

const (
	statusMessageTimeout     = 2 * time.Second // Время отображения статусных сообщений
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2
)

// Init - команда, выполняемая при запуске приложения.
func (m *model) Init() tea.Cmd {
	if m.state == todoListScreen {
		// Сессия восстановлена — сразу загружаем список.
		return tea.Batch(textinput.Blink, m.makeFetchTodosCmd(m.currentFilter()))
	}
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) (tea.Model, tea.Cmd) {
	m.savingStatus = status
	return m, clearStatusCmd(statusMessageTimeout)
}

// helpText возвращает строку подсказки для текущего экрана.
func (m *model) helpText() string {
	switch m.state {
	case loginRegisterChoiceScreen:
		return "Enter: выбрать, q: выход"
	case loginScreen:
		return "Enter: войти, Tab: следующее поле, Esc: назад"
	case registerScreen:
		return "Enter: зарегистрироваться, Tab: следующее поле, Esc: назад"
	case todoListScreen:
		return "a: добавить, e: изменить, пробел: выполнена/нет, d: удалить, /: поиск, f: фильтр, ctrl+l: выход из учетной записи, q: выход"
	case todoAddScreen:
		return "Enter: создать, Esc: отмена"
	case todoEditScreen:
		return "Enter: сохранить, Esc: отмена"
	case searchInputScreen:
		return "Enter: искать, Esc: отмена"
	default:
		return ""
	}
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.choiceMenu.View()
	case loginScreen:
		return m.viewLoginScreen()
	case registerScreen:
		return m.viewRegisterScreen()
	case todoListScreen:
		return m.viewTodoListScreen()
	case todoAddScreen:
		return m.viewTodoAddScreen()
	case todoEditScreen:
		return m.viewTodoEditScreen()
	case searchInputScreen:
		return m.viewSearchInputScreen()
	default:
		return "Неизвестное состояние!"
	}
}

// View отрисовывает пользовательский интерфейс.
func (m *model) View() string {
	mainContent := m.getMainContentView()
	help := m.helpText()

	var footer strings.Builder
	if m.savingStatus != "" {
		footer.WriteString("\n")
		footer.WriteString(m.savingStatus)
	}

	styledContent := m.docStyle.Render(mainContent)
	return fmt.Sprintf("%s\n%s%s", styledContent, help, footer.String())
}

// initModel создает начальную модель приложения.
func initModel(serverURL string, sessionStore *session.Store) *model {
	apiClient := api.NewHTTPClient(serverURL, sessionStore)

	m := &model{
		serverURL:      serverURL,
		session:        sessionStore,
		authSvc:        auth.NewService(apiClient, sessionStore),
		todoCtrl:       todos.NewController(apiClient),
		choiceMenu:     initChoiceMenu(),
		todoList:       initTodoList(),
		loginInputs:    initLoginInputs(),
		registerInputs: initRegisterInputs(),
		addTitleInput:  initTitleInput("Название новой задачи"),
		editTitleInput: initTitleInput("Название задачи"),
		searchInput:    initSearchInput(),
		docStyle:       lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal),
	}
	m.state = m.initialScreen()
	return m
}

// Start запускает TUI приложение.
func Start(serverURL, sessionPath string) {
	sessionStore := session.NewStore(sessionPath)
	m := initModel(serverURL, sessionStore)

	slog.Info("Запуск TUI", "server_url", serverURL, "session_path", sessionPath, "initial_state", int(m.state))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("Ошибка выполнения TUI", "error", err)
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}
