package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// RouterDeps — зависимости маршрутизатора.
type RouterDeps struct {
	Items   *usecase.ItemUseCase
	Catalog *usecase.CatalogUseCase
	Stats   *usecase.StatsUseCase
	System  *usecase.SystemUseCase

	AppName string
	Version string
	DBHost  string
	DBName  string
}

// Router регистрирует маршруты API.
func Router(app *fiber.App, deps RouterDeps) {
	systemHandler := NewSystemHandler(deps.System, deps.AppName, deps.Version, deps.DBHost, deps.DBName)
	app.Get("/", systemHandler.Root)
	app.Get("/health", systemHandler.Health)

	api := app.Group("/api")

	// Товары
	itemHandler := NewItemHandler(deps.Items)
	api.Get("/database-items", itemHandler.List)
	api.Post("/items/add", itemHandler.Add)
	api.Patch("/items/move/:id/toggle", itemHandler.Toggle)
	api.Delete("/items/remove/:id", itemHandler.Remove)

	// Каталог, фильтр, поиск
	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Get("/filter-by-category/:category", catalogHandler.FilterByCategory)
	api.Get("/categories", catalogHandler.Categories)
	api.Post("/search-products", catalogHandler.Search)

	// Статистика
	statsHandler := NewStatsHandler(deps.Stats)
	api.Get("/statistics", statsHandler.Statistics)

	// Диагностика
	api.Get("/test-connection", systemHandler.TestConnection)
}
