package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Сигнальные ошибки для проверки через errors.Is.
var (
	// ErrAuthorization сигнализирует об ошибке авторизации (401).
	ErrAuthorization = errors.New("ошибка авторизации")
	// ErrNotFound сигнализирует, что ресурс не найден на сервере (404).
	ErrNotFound = errors.New("ресурс не найден")
)

// TransportError означает, что запрос не удалось выполнить вовсе:
// сеть недоступна, соединение оборвалось, контекст отменен.
type TransportError struct {
	Method string // HTTP метод неудавшейся операции
	Path   string // Шаблон пути операции
	Err    error  // Исходная ошибка транспорта
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ошибка выполнения запроса %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError означает, что сервер ответил неуспешным статусом.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("запрос %s %s завершился со статусом %d", e.Method, e.Path, e.StatusCode)
}

// Is позволяет проверять типовые статусы через сигнальные ошибки:
// errors.Is(err, api.ErrAuthorization) для 401,
// errors.Is(err, api.ErrNotFound) для 404.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrAuthorization:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DecodeError означает, что тело успешного ответа не соответствует
// ожидаемой форме. Отличается от транспортной и статусной ошибки:
// запрос прошел, но договоренность о формате нарушена.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ошибка декодирования ответа %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
