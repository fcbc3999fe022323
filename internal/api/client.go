// Package api реализует типизированный HTTP клиент для todo-сервиса.
// Все операции проходят через единый построитель запросов: подстановка
// path-параметров, сериализация только присутствующих query-параметров,
// заголовок Authorization из источника токена и декодирование ответа.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/raibhavesh/todo-app-linity/models"
)

// TokenSource отдает текущий токен аутентификации.
// Пустая строка означает анонимное состояние — заголовок не добавляется.
// Клиент только читает источник и никогда его не изменяет.
type TokenSource interface {
	Token() string
}

// Client определяет интерфейс для взаимодействия с API todo-сервиса.
type Client interface {
	// Register регистрирует нового пользователя и возвращает его
	// авторитетную проекцию (с ID, назначенным сервером).
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login аутентифицирует пользователя и возвращает токен.
	Login(ctx context.Context, username, password string) (string, error)
	// ListTodos возвращает список задач с учетом фильтра.
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error)
	// CreateTodo создает задачу и возвращает ее серверное представление.
	CreateTodo(ctx context.Context, title string, completed bool) (*models.Todo, error)
	// UpdateTodo отправляет полное представление задачи по ее ID.
	UpdateTodo(ctx context.Context, id int64, title string, completed bool) (*models.Todo, error)
	// DeleteTodo удаляет задачу по ID.
	DeleteTodo(ctx context.Context, id int64) error
}

// httpClient реализует интерфейс Client поверх net/http.
type httpClient struct {
	baseURL    string       // Базовый URL сервера, например "http://localhost:3001"
	httpClient *http.Client // HTTP клиент для выполнения запросов
	tokens     TokenSource  // Источник токена; может быть nil для анонимного клиента
}

// NewHTTPClient создает новый экземпляр API клиента.
// tokens может быть nil — тогда все запросы уходят без авторизации.
func NewHTTPClient(baseURL string, tokens TokenSource) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// requestSpec описывает одну операцию REST контракта.
// Поля запроса живут каждое в своем слоте: path-параметры подставляются
// в шаблон пути, query сериализуется как есть, body кодируется в JSON.
type requestSpec struct {
	method     string            // HTTP метод
	path       string            // Шаблон пути, например "/todos/{id}"
	pathParams map[string]string // Значения для плейсхолдеров шаблона
	query      url.Values        // Только присутствующие параметры
	body       any               // nil — запрос без тела
	okStatus   int               // Ожидаемый успешный статус
}

// do выполняет запрос по спецификации и декодирует ответ в out.
// out == nil означает, что тело успешного ответа не интересует.
func (c *httpClient) do(ctx context.Context, spec requestSpec, out any) error {
	reqURL, err := c.buildURL(spec)
	if err != nil {
		return &TransportError{Method: spec.method, Path: spec.path, Err: err}
	}

	var bodyReader io.Reader
	if spec.body != nil {
		jsonData, marshalErr := json.Marshal(spec.body)
		if marshalErr != nil {
			return &TransportError{Method: spec.method, Path: spec.path, Err: marshalErr}
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, reqURL, bodyReader)
	if err != nil {
		return &TransportError{Method: spec.method, Path: spec.path, Err: err}
	}
	if spec.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Заголовок авторизации добавляется только при наличии токена.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: spec.method, Path: spec.path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != spec.okStatus {
		return &StatusError{Method: spec.method, Path: spec.path, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DecodeError{Method: spec.method, Path: spec.path, Err: err}
		}
	}
	return nil
}

// buildURL собирает итоговый URL: подставляет path-параметры
// в шаблон и добавляет строку запроса.
func (c *httpClient) buildURL(spec requestSpec) (string, error) {
	path := spec.path
	for name, value := range spec.pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("не все path-параметры подставлены в %q", spec.path)
	}

	fullURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("ошибка формирования URL: %w", err)
	}
	if len(spec.query) > 0 {
		fullURL += "?" + spec.query.Encode()
	}
	return fullURL, nil
}

// Register отправляет запрос на регистрацию.
func (c *httpClient) Register(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, requestSpec{
		method:   http.MethodPost,
		path:     "/register",
		body:     models.RegisterRequest{Username: username, Password: password},
		okStatus: http.StatusOK,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login отправляет запрос на вход и возвращает полученный токен.
func (c *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	var loginResponse models.LoginResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodPost,
		path:     "/login",
		body:     models.LoginRequest{Username: username, Password: password},
		okStatus: http.StatusOK,
	}, &loginResponse)
	if err != nil {
		return "", err
	}
	if loginResponse.Token == "" {
		// Формально ответ декодировался, но контракт нарушен.
		return "", &DecodeError{
			Method: http.MethodPost,
			Path:   "/login",
			Err:    fmt.Errorf("сервер вернул пустой токен"),
		}
	}
	return loginResponse.Token, nil
}

// ListTodos запрашивает список задач. Поля фильтра, не несущие
// ограничений, в строку запроса не попадают.
func (c *httpClient) ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	var todos []models.Todo
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		path:     "/todos",
		query:    filter.Query(),
		okStatus: http.StatusOK,
	}, &todos)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo создает новую задачу.
func (c *httpClient) CreateTodo(ctx context.Context, title string, completed bool) (*models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, requestSpec{
		method:   http.MethodPost,
		path:     "/todos",
		body:     models.TodoRequest{Title: title, Completed: completed},
		okStatus: http.StatusOK,
	}, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo отправляет полное обновленное представление задачи.
func (c *httpClient) UpdateTodo(ctx context.Context, id int64, title string, completed bool) (*models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, requestSpec{
		method:     http.MethodPut,
		path:       "/todos/{id}",
		pathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
		body:       models.TodoRequest{Title: title, Completed: completed},
		okStatus:   http.StatusOK,
	}, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo удаляет задачу. Сервер отвечает 204 без тела.
func (c *httpClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, requestSpec{
		method:     http.MethodDelete,
		path:       "/todos/{id}",
		pathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
		okStatus:   http.StatusNoContent,
	}, nil)
}
