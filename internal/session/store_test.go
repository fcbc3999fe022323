package session_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raibhavesh/todo-app-linity/internal/session"
	"github.com/raibhavesh/todo-app-linity/models"
)

func tempSessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStore_SetGetClear(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	store := session.NewStore(tempSessionPath(t))

	// Новое хранилище анонимно
	assert.Empty(store.Token())
	assert.Nil(store.User())

	user := &models.User{ID: 42, Username: "alice"}
	require.NoError(store.Set("jwt-token", user))

	assert.Equal("jwt-token", store.Token())
	require.NotNil(store.User())
	assert.Equal(int64(42), store.User().ID)
	assert.Equal("alice", store.User().Username)

	require.NoError(store.Clear())
	assert.Empty(store.Token())
	assert.Nil(store.User())
}

func TestStore_SetRejectsEmptyToken(t *testing.T) {
	require := require.New(t)

	store := session.NewStore(tempSessionPath(t))
	require.Error(store.Set("", nil))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := tempSessionPath(t)

	first := session.NewStore(path)
	require.NoError(first.Set("jwt-token", &models.User{ID: models.SentinelUserID, Username: "alice"}))

	// Новый экземпляр лениво восстанавливает состояние из файла
	second := session.NewStore(path)
	assert.Equal("jwt-token", second.Token())
	require.NotNil(second.User())
	assert.Equal("alice", second.User().Username)
	assert.Equal(models.SentinelUserID, second.User().ID)
}

func TestStore_ClearRemovesFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := tempSessionPath(t)
	store := session.NewStore(path)
	require.NoError(store.Set("jwt-token", nil))

	_, err := os.Stat(path)
	require.NoError(err)

	require.NoError(store.Clear())
	_, err = os.Stat(path)
	assert.ErrorIs(err, os.ErrNotExist)

	// Повторная очистка — не ошибка
	require.NoError(store.Clear())
}

func TestStore_CorruptFileDegradesToAnonymous(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := tempSessionPath(t)
	require.NoError(os.WriteFile(path, []byte("{not json"), 0600))

	store := session.NewStore(path)
	assert.Empty(store.Token())
	assert.Nil(store.User())
}

func TestStore_FileWithoutTokenIsAnonymous(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := tempSessionPath(t)
	raw, err := json.Marshal(map[string]any{"user": map[string]any{"id": 1, "username": "alice"}})
	require.NoError(err)
	require.NoError(os.WriteFile(path, raw, 0600))

	store := session.NewStore(path)
	assert.Empty(store.Token())
	// Пользователь без токена не восстанавливается: ключи живут и
	// очищаются вместе.
	assert.Nil(store.User())
}

func TestStore_UserReturnsCopy(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	store := session.NewStore(tempSessionPath(t))
	require.NoError(store.Set("jwt-token", &models.User{ID: 1, Username: "alice"}))

	first := store.User()
	first.Username = "mallory"

	assert.Equal("alice", store.User().Username)
}

func TestStore_SetOverwritesPrevious(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := tempSessionPath(t)
	store := session.NewStore(path)
	require.NoError(store.Set("old-token", &models.User{ID: 1, Username: "alice"}))
	require.NoError(store.Set("new-token", &models.User{ID: 2, Username: "bob"}))

	assert.Equal("new-token", store.Token())
	assert.Equal("bob", store.User().Username)

	// И на диске тоже новое значение
	reloaded := session.NewStore(path)
	assert.Equal("new-token", reloaded.Token())
}
