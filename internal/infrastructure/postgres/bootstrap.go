package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// EnsureSchema проверяет наличие таблицы fridge_items и создаёт её при
// первом запуске. Схема повторяет исходную: serial id, обязательное
// название, is_in_fridge по умолчанию true, created_at по умолчанию
// текущее время.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'fridge_items'
		)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("проверка таблицы: %w", err)
	}
	if exists {
		return nil
	}

	log.Info().Msg("таблица fridge_items не найдена, создаём")
	_, err = conn.Exec(ctx, `
		CREATE TABLE fridge_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			is_in_fridge BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("создание таблицы: %w", err)
	}
	log.Info().Msg("таблица fridge_items создана")
	return nil
}
