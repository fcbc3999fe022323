package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raibhavesh/todo-app-linity/models"
)

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для аутентификации --- //

type loginSuccessMsg struct {
	User *models.User
}

// LoginError сообщает об ошибке входа.
type LoginError struct {
	err error
}

func (e LoginError) Error() string {
	return e.err.Error()
}

// makeLoginCmd выполняет вход через сервис аутентификации.
func (m *model) makeLoginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, err := m.authSvc.Login(ctx, username, password)
		if err != nil {
			// Возвращаем исходную ошибку сервиса без добавления контекста
			return LoginError{err: err}
		}
		return loginSuccessMsg{User: user}
	}
}

type signupSuccessMsg struct {
	User *models.User
}

// SignupError сообщает об ошибке регистрации.
// Может оборачивать auth.ErrPartialSignup: учетная запись создана,
// но вход не удался.
type SignupError struct {
	err error
}

func (e SignupError) Error() string {
	return e.err.Error()
}

func (e SignupError) Unwrap() error {
	return e.err
}

// makeSignupCmd выполняет регистрацию со входом через сервис аутентификации.
func (m *model) makeSignupCmd(username, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, err := m.authSvc.Signup(ctx, username, password, confirm)
		if err != nil {
			return SignupError{err: err}
		}
		return signupSuccessMsg{User: user}
	}
}

// --- Сообщения и команды для списка задач --- //

type todosLoadedMsg struct {
	Todos []models.Todo
}

// TodoListError сообщает об ошибке загрузки списка задач.
type TodoListError struct {
	err error
}

func (e TodoListError) Error() string {
	return e.err.Error()
}

func (e TodoListError) Unwrap() error {
	return e.err
}

// makeFetchTodosCmd загружает список задач по фильтру.
func (m *model) makeFetchTodosCmd(filter models.TodoFilter) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.todoCtrl.Fetch(ctx, filter); err != nil {
			return TodoListError{err: err}
		}
		// В список попадает зеркало контроллера, а не сырой ответ:
		// устаревшая выборка не перетирает более новую.
		return todosLoadedMsg{Todos: m.todoCtrl.Todos()}
	}
}

type todoCreatedMsg struct {
	Todo *models.Todo
}

type todoUpdatedMsg struct {
	Todo *models.Todo
}

type todoDeletedMsg struct {
	ID int64
}

// TodoMutateError сообщает об ошибке создания, обновления или удаления задачи.
type TodoMutateError struct {
	err error
}

func (e TodoMutateError) Error() string {
	return e.err.Error()
}

func (e TodoMutateError) Unwrap() error {
	return e.err
}

// makeCreateTodoCmd создает новую задачу.
func (m *model) makeCreateTodoCmd(title string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		todo, err := m.todoCtrl.Create(ctx, title)
		if err != nil {
			return TodoMutateError{err: err}
		}
		return todoCreatedMsg{Todo: todo}
	}
}

// makeUpdateTodoCmd отправляет полное представление задачи.
func (m *model) makeUpdateTodoCmd(todo models.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		updated, err := m.todoCtrl.Update(ctx, todo)
		if err != nil {
			return TodoMutateError{err: err}
		}
		return todoUpdatedMsg{Todo: updated}
	}
}

// makeDeleteTodoCmd удаляет задачу по ID.
func (m *model) makeDeleteTodoCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.todoCtrl.Delete(ctx, id); err != nil {
			return TodoMutateError{err: err}
		}
		return todoDeletedMsg{ID: id}
	}
}
