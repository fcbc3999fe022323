// Package todos управляет локальным зеркалом списка задач.
// Зеркало — кэш серверного списка: целиком перестраивается при выборке
// и точечно правится после подтвержденных мутаций. Частичное или
// неподтвержденное состояние в зеркало не попадает.
package todos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/raibhavesh/todo-app-linity/internal/api"
	"github.com/raibhavesh/todo-app-linity/models"
)

// ErrEmptyTitle — клиентская проверка: задача без названия не отправляется.
var ErrEmptyTitle = errors.New("название задачи не может быть пустым")

// Controller владеет зеркалом списка задач и выполняет операции
// над ним через API клиент. Команды bubbletea выполняются в отдельных
// горутинах, поэтому зеркало защищено мьютексом.
type Controller struct {
	api api.Client

	mu     sync.Mutex
	mirror []models.Todo
	// Счетчик поколений выборки: ответы устаревших запросов списка
	// не перезаписывают зеркало более нового.
	issuedGen  uint64
	appliedGen uint64
}

// NewController создает контроллер с пустым зеркалом.
func NewController(apiClient api.Client) *Controller {
	return &Controller{api: apiClient}
}

// Fetch запрашивает список задач по фильтру и при успехе замещает
// зеркало целиком, сохраняя серверный порядок. Если к моменту ответа
// был выдан более новый запрос, результат возвращается вызывающему,
// но зеркало не трогается. При ошибке зеркало также остается прежним.
func (c *Controller) Fetch(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	c.mu.Lock()
	c.issuedGen++
	gen := c.issuedGen
	c.mu.Unlock()

	todos, err := c.api.ListTodos(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить список задач: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.issuedGen || gen <= c.appliedGen {
		// Ответ устарел: уже выдан (или применен) более новый запрос.
		slog.Debug("Ответ устаревшей выборки отброшен", "gen", gen, "issued", c.issuedGen)
		return todos, nil
	}
	c.appliedGen = gen
	c.mirror = append([]models.Todo(nil), todos...)
	return todos, nil
}

// Create создает задачу с completed=false и добавляет серверный ответ
// в конец зеркала. Уникальность названия не проверяется.
func (c *Controller) Create(ctx context.Context, title string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	todo, err := c.api.CreateTodo(ctx, title, false)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать задачу: %w", err)
	}

	c.mu.Lock()
	c.mirror = append(c.mirror, *todo)
	c.mu.Unlock()
	return todo, nil
}

// Update отправляет полное представление задачи по ее ID. При успехе
// запись в зеркале замещается по совпадению ID; если записи нет,
// зеркало не меняется — серверное обновление при этом уже произошло.
func (c *Controller) Update(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	updated, err := c.api.UpdateTodo(ctx, todo.ID, todo.Title, todo.Completed)
	if err != nil {
		return nil, fmt.Errorf("не удалось обновить задачу: %w", err)
	}

	c.mu.Lock()
	for i := range c.mirror {
		if c.mirror[i].ID == updated.ID {
			c.mirror[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// Delete удаляет задачу по ID. Ответ "не найдено" считается успехом:
// повторное удаление — no-op, а не ошибка. При успехе запись убирается
// из зеркала, если она там была.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.api.DeleteTodo(ctx, id); err != nil && !errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("не удалось удалить задачу: %w", err)
	}

	c.mu.Lock()
	for i := range c.mirror {
		if c.mirror[i].ID == id {
			c.mirror = append(c.mirror[:i], c.mirror[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// Todos возвращает копию зеркала в серверном порядке.
func (c *Controller) Todos() []models.Todo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Todo(nil), c.mirror...)
}
