// Package auth управляет жизненным циклом аутентификации:
// вход, регистрация со входом и выход. Сервис — единственное место,
// которому разрешено изменять хранилище сессии.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/raibhavesh/todo-app-linity/internal/api"
	"github.com/raibhavesh/todo-app-linity/internal/session"
	"github.com/raibhavesh/todo-app-linity/models"
)

// MinPasswordLength — минимальная длина пароля при регистрации.
const MinPasswordLength = 6

// ErrPartialSignup сигнализирует особое состояние: регистрация прошла,
// но последующий вход не удался. Учетная запись существует, сессия
// осталась анонимной — пользователю нужно войти вручную.
var ErrPartialSignup = errors.New("учетная запись создана, но войти не удалось")

// ValidationError — ошибка клиентской проверки, возникающая до любого
// сетевого вызова.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Service оркестрирует операции аутентификации поверх API клиента
// и хранилища сессии.
type Service struct {
	api     api.Client
	session *session.Store
}

// NewService создает сервис аутентификации.
func NewService(apiClient api.Client, sessionStore *session.Store) *Service {
	return &Service{api: apiClient, session: sessionStore}
}

// Login выполняет вход. При успехе сессия и проекция пользователя
// сохраняются; при любой ошибке сессия остается нетронутой.
// Эндпоинт /login возвращает только токен, поэтому ID в проекции —
// models.SentinelUserID.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		slog.Debug("Вход не выполнен", "username", username, "error", err)
		return nil, fmt.Errorf("не удалось войти: проверьте имя пользователя и пароль")
	}

	user := &models.User{ID: models.SentinelUserID, Username: username}
	if err = s.session.Set(token, user); err != nil {
		return nil, fmt.Errorf("не удалось сохранить сессию: %w", err)
	}
	slog.Info("Вход выполнен", "username", username)
	return user, nil
}

// Signup регистрирует пользователя и сразу выполняет вход с теми же
// учетными данными, чтобы получить токен. Проекция строится из ответа
// /register (авторитетный ID). Если регистрация прошла, а вход — нет,
// возвращается ErrPartialSignup, сессия остается анонимной.
func (s *Service) Signup(ctx context.Context, username, password, confirm string) (*models.User, error) {
	if err := validateSignup(username, password, confirm); err != nil {
		return nil, err
	}

	user, err := s.api.Register(ctx, username, password)
	if err != nil {
		slog.Debug("Регистрация не выполнена", "username", username, "error", err)
		return nil, fmt.Errorf("не удалось зарегистрироваться")
	}
	if user.ID == models.SentinelUserID {
		// Сервер обязан вернуть действительный ID.
		return nil, fmt.Errorf("не удалось зарегистрироваться")
	}

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		slog.Warn("Регистрация прошла, но вход не удался", "username", username, "error", err)
		return nil, ErrPartialSignup
	}

	if err = s.session.Set(token, user); err != nil {
		return nil, fmt.Errorf("не удалось сохранить сессию: %w", err)
	}
	slog.Info("Регистрация и вход выполнены", "username", username, "user_id", user.ID)
	return user, nil
}

// Logout безусловно очищает сессию и сохраненного пользователя.
// Сервер при этом не вызывается: токен — предъявительский, на стороне
// сервиса отзывать нечего.
func (s *Service) Logout() error {
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("не удалось очистить сессию: %w", err)
	}
	slog.Info("Выход выполнен")
	return nil
}

// CurrentUser возвращает сохраненную проекцию пользователя или nil,
// если сессия анонимна.
func (s *Service) CurrentUser() *models.User {
	if s.session.Token() == "" {
		return nil
	}
	return s.session.User()
}

// validateSignup выполняет клиентские проверки до сетевых вызовов.
func validateSignup(username, password, confirm string) error {
	if username == "" {
		return &ValidationError{Msg: "имя пользователя не может быть пустым"}
	}
	if len(password) < MinPasswordLength {
		return &ValidationError{Msg: fmt.Sprintf("пароль должен быть не короче %d символов", MinPasswordLength)}
	}
	if password != confirm {
		return &ValidationError{Msg: "пароли не совпадают"}
	}
	return nil
}
