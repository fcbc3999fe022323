// Package models содержит общие модели данных, которыми клиент
// обменивается с сервером todo-сервиса.
package models

import (
	"net/url"
	"strconv"
)

// SentinelUserID — зарезервированный недействительный идентификатор
// пользователя. Эндпоинт /login возвращает только токен, поэтому при входе
// без предшествующей регистрации настоящий ID неизвестен. Значение нельзя
// использовать для сравнения идентичности пользователей.
const SentinelUserID int64 = -1

// User представляет проекцию пользователя на стороне клиента.
// Авторитетный ID приходит только из ответа /register; после /login
// поле ID содержит SentinelUserID.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Todo представляет задачу, принадлежащую серверу.
// Локальная копия списка — только кэш.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"user_id"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token string `json:"token"`
}

// TodoRequest представляет тело запросов на создание и обновление задачи.
type TodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoFilter описывает условия выборки списка задач.
// Нулевое значение означает "без ограничений": nil Completed и пустая
// строка Search не попадают в параметры запроса вовсе.
type TodoFilter struct {
	Completed *bool  // nil — без фильтра по состоянию
	Search    string // "" — без текстового поиска
}

// Query переводит фильтр в параметры строки запроса.
// Отсутствующие поля не сериализуются — сервер различает
// "параметр не передан" и "параметр пуст".
func (f TodoFilter) Query() url.Values {
	query := url.Values{}
	if f.Completed != nil {
		query.Set("completed", strconv.FormatBool(*f.Completed))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	return query
}

// IsZero сообщает, что фильтр не накладывает ограничений.
func (f TodoFilter) IsZero() bool {
	return f.Completed == nil && f.Search == ""
}
