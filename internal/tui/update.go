package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raibhavesh/todo-app-linity/internal/auth"
)

// Update обрабатывает входящие сообщения.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// == Глобальные сообщения (не зависят от экрана) ==
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := m.docStyle.GetFrameSize()
		m.todoList.SetSize(msg.Width-h, msg.Height-v-listHeightOffset)
		m.choiceMenu.SetSize(msg.Width-h, msg.Height-v-listHeightOffset)
		m.addTitleInput.Width = msg.Width - h - inputWidthOffset
		m.editTitleInput.Width = msg.Width - h - inputWidthOffset
		m.searchInput.Width = msg.Width - h - inputWidthOffset
		return m, nil

	case clearStatusMsg:
		m.savingStatus = ""
		return m, nil

	case errMsg:
		return m.handleErrorMsg(msg)

	// == Результаты операций аутентификации ==
	case loginSuccessMsg:
		slog.Info("Вход выполнен, переход к списку задач", "username", msg.User.Username)
		return m.enterTodoList("Вход выполнен")

	case LoginError:
		m.err = msg.err
		return m.setStatusMessage("Ошибка входа")

	case signupSuccessMsg:
		slog.Info("Регистрация выполнена, переход к списку задач",
			"username", msg.User.Username, "user_id", msg.User.ID)
		return m.enterTodoList("Регистрация выполнена")

	case SignupError:
		m.err = msg.err
		if errors.Is(msg.err, auth.ErrPartialSignup) {
			// Особый случай: учетная запись создана, вход не удался.
			// Отправляем пользователя на экран входа, а не показываем
			// общую ошибку регистрации.
			m.state = loginScreen
			m.credentialsFocusField = 0
			newModel, cmd := m.setStatusMessage("Войдите вручную")
			return newModel, tea.Batch(cmd, focusInput(m.loginInputs, loginFieldUsername), tea.ClearScreen)
		}
		return m.setStatusMessage("Ошибка регистрации")

	// == Результаты операций над списком задач ==
	case todosLoadedMsg:
		m.err = nil
		return m, m.syncTodoList()

	case TodoListError:
		if newModel, cmd, handled := m.handleAuthLoss(msg.err); handled {
			return newModel, cmd
		}
		m.err = msg.err
		// Прежнее зеркало не тронуто: список продолжает показывать
		// последние успешно загруженные данные.
		return m.setStatusMessage("Ошибка загрузки списка")

	case todoCreatedMsg:
		m.err = nil
		slog.Info("Задача создана", "id", msg.Todo.ID, "title", msg.Todo.Title)
		newModel, statusCmd := m.setStatusMessage("Задача создана")
		return newModel, tea.Batch(statusCmd, m.syncTodoList())

	case todoUpdatedMsg:
		m.err = nil
		slog.Info("Задача обновлена", "id", msg.Todo.ID)
		newModel, statusCmd := m.setStatusMessage("Сохранено")
		return newModel, tea.Batch(statusCmd, m.syncTodoList())

	case todoDeletedMsg:
		m.err = nil
		slog.Info("Задача удалена", "id", msg.ID)
		newModel, statusCmd := m.setStatusMessage("Задача удалена")
		return newModel, tea.Batch(statusCmd, m.syncTodoList())

	case TodoMutateError:
		if newModel, cmd, handled := m.handleAuthLoss(msg.err); handled {
			return newModel, cmd
		}
		m.err = msg.err
		return m.setStatusMessage("Ошибка операции")

	case tea.KeyMsg:
		// Глобальные команды (работают на всех экранах)
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case keyLogout:
			if m.state == todoListScreen {
				if err := m.authSvc.Logout(); err != nil {
					return m, func() tea.Msg { return errMsg{err: err} }
				}
				m.state = loginRegisterChoiceScreen
				m.err = nil
				newModel, cmd := m.setStatusMessage("Выход выполнен")
				return newModel, tea.Batch(cmd, tea.ClearScreen)
			}
		}
		// Если не глобальная команда, передаем дальше в обработчик текущего экрана
	}

	// == Обновление компонентов в зависимости от состояния ==
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.updateChoiceScreen(msg)
	case loginScreen:
		return m.updateLoginScreen(msg)
	case registerScreen:
		return m.updateRegisterScreen(msg)
	case todoListScreen:
		return m.updateTodoListScreen(msg)
	case todoAddScreen:
		return m.updateTodoAddScreen(msg)
	case todoEditScreen:
		return m.updateTodoEditScreen(msg)
	case searchInputScreen:
		return m.updateSearchInputScreen(msg)
	default:
		return m, nil
	}
}

// enterTodoList переводит приложение на экран списка задач
// и запускает начальную выборку.
func (m *model) enterTodoList(status string) (tea.Model, tea.Cmd) {
	m.state = todoListScreen
	m.err = nil
	newModel, statusCmd := m.setStatusMessage(status)
	return newModel, tea.Batch(
		statusCmd,
		m.makeFetchTodosCmd(m.currentFilter()),
		tea.ClearScreen,
	)
}

// handleErrorMsg обрабатывает ошибку вне конкретной операции.
func (m *model) handleErrorMsg(msg errMsg) (tea.Model, tea.Cmd) {
	slog.Error("Ошибка", "error", msg.err)
	m.err = msg.err
	return m.setStatusMessage(fmt.Sprintf("Ошибка: %v", msg.err))
}
