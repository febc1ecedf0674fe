package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// Живая база: статус healthy, версия обрезается до первой запятой.
func TestSystemUseCase_Health(t *testing.T) {
	uc := usecase.NewSystemUseCase(newFakeRepo("Молоко"))

	resp := uc.Health("fridge-api")

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "fridge-api", resp.Service)
	assert.Equal(t, "connected", resp.Database.Status)
	assert.Equal(t, "PostgreSQL 16.2 (Debian)", resp.Database.Version)
	assert.NotEmpty(t, resp.Database.Time)
	assert.NotEmpty(t, resp.MemoryUsage)
	assert.Empty(t, resp.Message)
}

// Мёртвая база: сервис всё равно отвечает, деградация видна в payload.
func TestSystemUseCase_Health_BazaNedostupna(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("connection refused")
	uc := usecase.NewSystemUseCase(repo)

	resp := uc.Health("fridge-api")

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "disconnected", resp.Database.Status)
	assert.Equal(t, "connection refused", resp.Database.Error)
	assert.Equal(t, "API работает, но база данных недоступна", resp.Message)
	assert.Empty(t, resp.MemoryUsage)
}

// Диагностика соединения возвращает счётчики таблицы.
func TestSystemUseCase_TestConnection(t *testing.T) {
	repo := newFakeRepo("Молоко", "Банан")
	repo.Insert("Кефир", false) //nolint:errcheck
	uc := usecase.NewSystemUseCase(repo)

	resp := uc.TestConnection()

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "established", resp.Database.Connection)
	require.NotNil(t, resp.Database.TotalItems)
	assert.EqualValues(t, 3, *resp.Database.TotalItems)
	assert.EqualValues(t, 2, *resp.Database.ItemsInFridge)
	assert.EqualValues(t, 1, *resp.Database.ItemsOutOfFridge)
}

// Сбой запроса — статус error с текстом ошибки.
func TestSystemUseCase_TestConnection_Oshibka(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("dial timeout")
	uc := usecase.NewSystemUseCase(repo)

	resp := uc.TestConnection()

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "failed", resp.Database.Connection)
	assert.Equal(t, "dial timeout", resp.Database.Error)
	assert.Nil(t, resp.Database.TotalItems)
}
