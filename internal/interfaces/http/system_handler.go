package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// SystemHandler — корневой, health и диагностический эндпоинты.
type SystemHandler struct {
	uc      *usecase.SystemUseCase
	appName string
	version string
	dbHost  string
	dbName  string
}

// NewSystemHandler строит обработчик.
func NewSystemHandler(uc *usecase.SystemUseCase, appName, version, dbHost, dbName string) *SystemHandler {
	return &SystemHandler{
		uc:      uc,
		appName: appName,
		version: version,
		dbHost:  dbHost,
		dbName:  dbName,
	}
}

// Root godoc
// @Summary      Метаданные сервиса и каталог маршрутов
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message:   "Fridge API запущен",
		Service:   h.appName,
		Version:   h.version,
		Timestamp: time.Now(),
		DatabaseConfig: dto.DatabaseConfig{
			Host:      h.dbHost,
			Database:  h.dbName,
			Connected: true,
		},
		Endpoints: []dto.EndpointInfo{
			{Path: "/", Method: "GET", Description: "Информация о сервисе"},
			{Path: "/health", Method: "GET", Description: "Проверка здоровья"},
			{Path: "/api/database-items", Method: "GET", Description: "Получить все товары"},
			{Path: "/api/items/add", Method: "POST", Description: "Добавить товар"},
			{Path: "/api/items/move/{id}/toggle", Method: "PATCH", Description: "Переместить товар"},
			{Path: "/api/items/remove/{id}", Method: "DELETE", Description: "Удалить товар"},
			{Path: "/api/filter-by-category/{category}", Method: "GET", Description: "Фильтр по категории"},
			{Path: "/api/categories", Method: "GET", Description: "Категории товаров"},
			{Path: "/api/search-products", Method: "POST", Description: "Поиск товаров"},
			{Path: "/api/statistics", Method: "GET", Description: "Статистика по категориям"},
			{Path: "/api/test-connection", Method: "GET", Description: "Диагностика соединения с БД"},
		},
	})
}

// Health godoc
// @Summary      Проверка здоровья сервиса и доступности БД
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	// деградация базы отражается в payload, сам вызов всегда 200
	return c.JSON(h.uc.Health(h.appName))
}

// TestConnection godoc
// @Summary      Диагностика соединения с БД и счётчики таблицы
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.TestConnectionResponse
// @Router       /api/test-connection [get]
func (h *SystemHandler) TestConnection(c *fiber.Ctx) error {
	return c.JSON(h.uc.TestConnection())
}
