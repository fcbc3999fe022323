//nolint:testpackage // Тесты в том же пакете для доступа к непубличным функциям модели.
package tui

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raibhavesh/todo-app-linity/internal/api"
	"github.com/raibhavesh/todo-app-linity/internal/auth"
	"github.com/raibhavesh/todo-app-linity/internal/session"
	"github.com/raibhavesh/todo-app-linity/internal/todos"
	"github.com/raibhavesh/todo-app-linity/models"
)

// TUITestMockAPIClient реализует интерфейс api.Client для тестирования TUI.
type TUITestMockAPIClient struct {
	mock.Mock
}

func (m *TUITestMockAPIClient) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, errors.New("неверный тип результата")
	}
	return user, args.Error(1)
}

func (m *TUITestMockAPIClient) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *TUITestMockAPIClient) ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	result, ok := args.Get(0).([]models.Todo)
	if !ok {
		return nil, errors.New("неверный тип результата")
	}
	return result, args.Error(1)
}

func (m *TUITestMockAPIClient) CreateTodo(ctx context.Context, title string, completed bool) (*models.Todo, error) {
	args := m.Called(ctx, title, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	todo, ok := args.Get(0).(*models.Todo)
	if !ok {
		return nil, errors.New("неверный тип результата")
	}
	return todo, args.Error(1)
}

func (m *TUITestMockAPIClient) UpdateTodo(ctx context.Context, id int64, title string, completed bool) (*models.Todo, error) {
	args := m.Called(ctx, id, title, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	todo, ok := args.Get(0).(*models.Todo)
	if !ok {
		return nil, errors.New("неверный тип результата")
	}
	return todo, args.Error(1)
}

func (m *TUITestMockAPIClient) DeleteTodo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestModel создает модель с мок-клиентом и временным файлом сессии.
func newTestModel(t *testing.T, mockAPI api.Client) *model {
	t.Helper()
	sessionStore := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	m := &model{
		serverURL:      "http://localhost:3001",
		session:        sessionStore,
		authSvc:        auth.NewService(mockAPI, sessionStore),
		todoCtrl:       todos.NewController(mockAPI),
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

func TestInitialScreen(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	t.Run("Анонимное состояние ведет на экран выбора", func(_ *testing.T) {
		m := newTestModel(t, new(TUITestMockAPIClient))
		assert.Equal(loginRegisterChoiceScreen, m.state)
	})

	t.Run("Восстановленная сессия ведет к списку задач", func(_ *testing.T) {
		sessionPath := filepath.Join(t.TempDir(), "session.json")
		store := session.NewStore(sessionPath)
		require.NoError(store.Set("jwt-token", &models.User{ID: 1, Username: "alice"}))

		mockAPI := new(TUITestMockAPIClient)
		m := newTestModel(t, mockAPI)
		// Подменяем хранилище на заполненное
		m.session = store
		m.authSvc = auth.NewService(mockAPI, store)
		m.state = m.initialScreen()

		assert.Equal(todoListScreen, m.state)
	})
}

func TestMakeLoginCmd(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	t.Run("Успешный вход", func(_ *testing.T) {
		mockAPI := new(TUITestMockAPIClient)
		mockAPI.On("Login", mock.Anything, "alice", "secret1").Return("jwt-token", nil)
		m := newTestModel(t, mockAPI)

		msg := m.makeLoginCmd("alice", "secret1")()

		successMsg, ok := msg.(loginSuccessMsg)
		require.True(ok, "ожидалось loginSuccessMsg, получено %T", msg)
		assert.Equal("alice", successMsg.User.Username)
		assert.Equal(models.SentinelUserID, successMsg.User.ID)
		assert.Equal("jwt-token", m.session.Token())
	})

	t.Run("Неудачный вход", func(_ *testing.T) {
		mockAPI := new(TUITestMockAPIClient)
		mockAPI.On("Login", mock.Anything, "alice", "wrong").
			Return("", &api.StatusError{StatusCode: http.StatusUnauthorized})
		m := newTestModel(t, mockAPI)

		msg := m.makeLoginCmd("alice", "wrong")()

		_, ok := msg.(LoginError)
		require.True(ok, "ожидалось LoginError, получено %T", msg)
		assert.Empty(m.session.Token())
	})
}

func TestUpdate_LoginSuccess(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel(t, new(TUITestMockAPIClient))
	m.state = loginScreen

	updated, cmd := m.Update(loginSuccessMsg{User: &models.User{ID: models.SentinelUserID, Username: "alice"}})

	newModel, ok := updated.(*model)
	assert.True(ok)
	assert.Equal(todoListScreen, newModel.state)
	assert.NotNil(cmd) // Batch со статусом и начальной выборкой
}

func TestUpdate_PartialSignupLeadsToLogin(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel(t, new(TUITestMockAPIClient))
	m.state = registerScreen

	updated, _ := m.Update(SignupError{err: auth.ErrPartialSignup})

	newModel, ok := updated.(*model)
	assert.True(ok)
	// Учетная запись создана — пользователя отправляем входить вручную
	assert.Equal(loginScreen, newModel.state)
	assert.ErrorIs(newModel.err, auth.ErrPartialSignup)
}

func TestUpdate_TodosLoadedSyncsList(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mockAPI := new(TUITestMockAPIClient)
	loaded := []models.Todo{
		{ID: 1, Title: "buy milk", Completed: true},
		{ID: 2, Title: "walk dog", Completed: false},
	}
	mockAPI.On("ListTodos", mock.Anything, models.TodoFilter{}).Return(loaded, nil)

	m := newTestModel(t, mockAPI)
	m.state = todoListScreen

	// Контроллер загружает зеркало, сообщение синхронизирует список
	_, err := m.todoCtrl.Fetch(context.Background(), models.TodoFilter{})
	require.NoError(err)

	updated, _ := m.Update(todosLoadedMsg{Todos: m.todoCtrl.Todos()})
	newModel, ok := updated.(*model)
	require.True(ok)

	items := newModel.todoList.Items()
	require.Len(items, 2)
	first, ok := items[0].(todoItem)
	require.True(ok)
	assert.Equal("[x] buy milk", first.Title())
}

func TestUpdate_AuthLossRedirectsToChoice(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mockAPI := new(TUITestMockAPIClient)
	m := newTestModel(t, mockAPI)
	require.NoError(m.session.Set("expired-token", &models.User{ID: 1, Username: "alice"}))
	m.state = todoListScreen

	authErr := TodoListError{err: &api.StatusError{
		Method: http.MethodGet, Path: "/todos", StatusCode: http.StatusUnauthorized,
	}}
	updated, _ := m.Update(authErr)

	newModel, ok := updated.(*model)
	require.True(ok)
	// Токен отвергнут — сессия сброшена, маршрут ведет на вход
	assert.Equal(loginRegisterChoiceScreen, newModel.state)
	assert.Empty(newModel.session.Token())
}

func TestCycleCompletedFilter(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel(t, new(TUITestMockAPIClient))

	assert.Nil(m.completedFilter)
	assert.Equal("все", m.completedFilterLabel())

	m.cycleCompletedFilter()
	assert.NotNil(m.completedFilter)
	assert.True(*m.completedFilter)
	assert.Equal("выполненные", m.completedFilterLabel())

	m.cycleCompletedFilter()
	assert.NotNil(m.completedFilter)
	assert.False(*m.completedFilter)
	assert.Equal("невыполненные", m.completedFilterLabel())

	m.cycleCompletedFilter()
	assert.Nil(m.completedFilter)
}

func TestCurrentFilter(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel(t, new(TUITestMockAPIClient))
	assert.True(m.currentFilter().IsZero())

	m.searchText = "milk"
	m.cycleCompletedFilter()

	filter := m.currentFilter()
	assert.Equal("milk", filter.Search)
	assert.NotNil(filter.Completed)
	assert.True(*filter.Completed)
}

func TestTodoItem(t *testing.T) {
	assert := assert.New(t)

	done := todoItem{todo: models.Todo{ID: 1, Title: "buy milk", Completed: true}}
	assert.Equal("[x] buy milk", done.Title())
	assert.Equal("#1 | выполнена", done.Description())
	assert.Equal("buy milk", done.FilterValue())

	pending := todoItem{todo: models.Todo{ID: 2, Title: "walk dog", Completed: false}}
	assert.Equal("[ ] walk dog", pending.Title())
	assert.Equal("#2 | не выполнена", pending.Description())
}

func TestUpdate_LogoutKey(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, new(TUITestMockAPIClient))
	require.NoError(m.session.Set("jwt-token", &models.User{ID: 1, Username: "alice"}))
	m.state = todoListScreen

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	newModel, ok := updated.(*model)
	require.True(ok)
	assert.Equal(loginRegisterChoiceScreen, newModel.state)
	assert.Empty(newModel.session.Token())
	assert.Nil(newModel.session.User())
}
