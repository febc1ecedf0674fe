package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/holodilnik/fridge-api/pkg/config"
)

// NewPool создаёт пул соединений PostgreSQL. Пул ленивый: создание не
// требует доступной базы — готовность проверяется отдельно (WaitReady),
// чтобы сервис мог подняться в деградированном режиме и отвечать
// ошибкой хранилища на каждый запрос, пока база не появится.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("создание пула: %w", err)
	}
	return pool, nil
}

// WaitReady пингует базу с фиксированной задержкой и ограниченным числом
// попыток. Используется только на старте: рабочие запросы не ретраятся и
// возвращают первую же ошибку.
func WaitReady(ctx context.Context, pool *pgxpool.Pool, attempts int, delay time.Duration) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			log.Info().
				Int("attempt", attempt).
				Int("max_attempts", attempts).
				Msg("подключение к БД успешно")
			return nil
		}
		if attempt < attempts {
			log.Warn().Err(err).Dur("delay", delay).Msg("ошибка подключения к БД, повтор")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("база недоступна после %d попыток: %w", attempts, err)
}
