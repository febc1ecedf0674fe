package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/holodilnik/fridge-api/internal/application/usecase"
	"github.com/holodilnik/fridge-api/internal/infrastructure/postgres"
	httpRouter "github.com/holodilnik/fridge-api/internal/interfaces/http"
	"github.com/holodilnik/fridge-api/pkg/config"
	"github.com/holodilnik/fridge-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("загрузка конфигурации: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_host", cfg.DB.Host).
		Str("db_name", cfg.DB.DBName).
		Str("db_user", cfg.DB.User).
		Msg("запуск приложения")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("конфигурация PostgreSQL")
	}
	defer pool.Close()

	// Деградированный старт: если база недоступна или схему создать не
	// удалось, сервис всё равно поднимается — каждый запрос будет
	// отвечать ошибкой хранилища, пока база не появится.
	if err := postgres.WaitReady(ctx, pool, 3, 5*time.Second); err != nil {
		log.Warn().Err(err).Msg("БД недоступна на старте, продолжаем в деградированном режиме")
	} else if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Warn().Err(err).Msg("инициализация схемы не удалась")
	} else {
		log.Info().Msg("инициализация БД завершена")
	}

	itemRepo := postgres.NewItemRepository(pool)

	itemUC := usecase.NewItemUseCase(itemRepo)
	catalogUC := usecase.NewCatalogUseCase(itemRepo)
	statsUC := usecase.NewStatsUseCase(itemRepo)
	systemUC := usecase.NewSystemUseCase(itemRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// CORS: в бою лучше явно указать допустимые домены.
	app.Use(cors.New())

	// Swagger UI локально: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fridge API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Items:   itemUC,
		Catalog: catalogUC,
		Stats:   statsUC,
		System:  systemUC,
		AppName: cfg.App.Name,
		Version: version,
		DBHost:  cfg.DB.Host,
		DBName:  cfg.DB.DBName,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-сервер завершился")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("получен сигнал остановки, завершаем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("остановка сервера")
	}

	log.Info().Msg("приложение остановлено")
}
