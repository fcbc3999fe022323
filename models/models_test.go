package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raibhavesh/todo-app-linity/models"
)

func boolPtr(v bool) *bool { return &v }

func TestTodoFilter_Query(t *testing.T) {
	assert := assert.New(t)

	// Отсутствующие ограничения не сериализуются вовсе
	assert.Empty(models.TodoFilter{}.Query().Encode())

	assert.Equal("completed=true",
		models.TodoFilter{Completed: boolPtr(true)}.Query().Encode())
	assert.Equal("completed=false",
		models.TodoFilter{Completed: boolPtr(false)}.Query().Encode())
	assert.Equal("search=milk",
		models.TodoFilter{Search: "milk"}.Query().Encode())
	assert.Equal("completed=true&search=milk",
		models.TodoFilter{Completed: boolPtr(true), Search: "milk"}.Query().Encode())
}

func TestTodoFilter_IsZero(t *testing.T) {
	assert := assert.New(t)

	assert.True(models.TodoFilter{}.IsZero())
	assert.False(models.TodoFilter{Search: "milk"}.IsZero())
	assert.False(models.TodoFilter{Completed: boolPtr(false)}.IsZero())
}
