// Package session хранит текущее состояние аутентификации: токен и
// проекцию пользователя. Значение живет в памяти и зеркалируется в
// JSON файл, чтобы пережить перезапуск клиента.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/raibhavesh/todo-app-linity/models"
)

const (
	sessionFilePermissions = 0600
	sessionDirPermissions  = 0700
)

// data — сериализуемое содержимое файла сессии.
// Токен и пользователь сохраняются и очищаются вместе.
type data struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Store владеет значением сессии и его копией на диске.
// Все методы безопасны для вызова из разных горутин.
type Store struct {
	path     string       // Путь к файлу сессии
	fileLock *flock.Flock // Межпроцессная блокировка файла

	mu       sync.Mutex
	hydrated bool // Файл уже прочитан (ленивое восстановление выполняется один раз)
	data     data
}

// NewStore создает хранилище, привязанное к файлу path.
// Файл читается лениво при первом обращении, а не здесь.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Token возвращает текущий токен; пустая строка означает
// анонимное состояние.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()
	return s.data.Token
}

// User возвращает сохраненную проекцию пользователя или nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()
	if s.data.User == nil {
		return nil
	}
	user := *s.data.User // Копия, чтобы вызывающий не менял внутреннее состояние
	return &user
}

// Set сохраняет токен и проекцию пользователя в памяти и на диске.
// Пустой токен недопустим — для сброса есть Clear.
func (s *Store) Set(token string, user *models.User) error {
	if token == "" {
		return errors.New("токен сессии не может быть пустым")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newData := data{Token: token}
	if user != nil {
		userCopy := *user
		newData.User = &userCopy
	}

	if err := s.writeFile(newData); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	// Память обновляется только после успешной записи на диск:
	// через публичный интерфейс частичное состояние не наблюдаемо.
	s.data = newData
	s.hydrated = true
	return nil
}

// Clear удаляет сессию из памяти и с диска.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data{}
	s.hydrated = true // После очистки повторное чтение файла не нужно

	if err := s.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла сессии: %w", err)
	}
	defer func() {
		if unlockErr := s.fileLock.Unlock(); unlockErr != nil {
			slog.Warn("Не удалось снять блокировку файла сессии", "error", unlockErr)
		}
	}()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления файла сессии: %w", err)
	}
	return nil
}

// hydrateLocked выполняет ленивое одноразовое восстановление из файла.
// Вызывается только под s.mu. Поврежденный или отсутствующий файл
// приводит к анонимному состоянию, а не к ошибке.
func (s *Store) hydrateLocked() {
	if s.hydrated {
		return
	}
	s.hydrated = true

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Не удалось прочитать файл сессии", "path", s.path, "error", err)
		}
		return
	}

	var stored data
	if err = json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("Файл сессии поврежден, сессия сброшена", "path", s.path, "error", err)
		return
	}
	if stored.Token == "" {
		// Файл без токена эквивалентен отсутствию сессии.
		return
	}

	s.data = stored
	slog.Debug("Сессия восстановлена из файла", "path", s.path)
}

// writeFile атомарно записывает содержимое сессии: сначала во временный
// файл рядом, затем rename поверх целевого. Под блокировкой flock,
// чтобы два процесса не писали файл одновременно.
func (s *Store) writeFile(value data) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ошибка кодирования сессии: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), sessionDirPermissions); err != nil {
		return fmt.Errorf("ошибка создания директории сессии: %w", err)
	}

	if err = s.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла сессии: %w", err)
	}
	defer func() {
		if unlockErr := s.fileLock.Unlock(); unlockErr != nil {
			slog.Warn("Не удалось снять блокировку файла сессии", "error", unlockErr)
		}
	}()

	tmpPath := s.path + ".tmp"
	if err = os.WriteFile(tmpPath, jsonData, sessionFilePermissions); err != nil {
		return fmt.Errorf("ошибка записи временного файла сессии: %w", err)
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("ошибка замены файла сессии: %w", err)
	}
	return nil
}
