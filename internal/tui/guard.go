package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raibhavesh/todo-app-linity/internal/api"
)

// Защита маршрутов: экраны задач доступны только при наличии сессии.
// Анонимное состояние всегда приводит на экран выбора входа/регистрации.

// initialScreen выбирает стартовый экран по состоянию сессии.
func (m *model) initialScreen() screenState {
	if m.session.Token() == "" {
		return loginRegisterChoiceScreen
	}
	return todoListScreen
}

// handleAuthLoss проверяет, не означает ли ошибка потерю авторизации
// (истекший или отозванный токен). Если да — сессия очищается и
// пользователь возвращается на экран входа. Возвращает флаг
// "ошибка обработана".
func (m *model) handleAuthLoss(err error) (tea.Model, tea.Cmd, bool) {
	if !errors.Is(err, api.ErrAuthorization) {
		return m, nil, false
	}

	slog.Warn("Сервер отверг токен, сессия сброшена", "error", err)
	if clearErr := m.authSvc.Logout(); clearErr != nil {
		slog.Error("Не удалось очистить сессию", "error", clearErr)
	}

	m.state = loginRegisterChoiceScreen
	m.err = errors.New("сессия истекла, войдите снова")
	newModel, cmd := m.setStatusMessage("Требуется вход")
	return newModel, tea.Batch(cmd, tea.ClearScreen), true
}
