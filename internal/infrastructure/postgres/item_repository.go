package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/holodilnik/fridge-api/internal/domain/entity"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo — реализация порта ItemRepository поверх PostgreSQL.
//
// Каждая операция берёт одно соединение из пула и гарантированно
// возвращает его (defer Release) на любом пути выхода. Записи выполняются
// в явной транзакции: коммит происходит до освобождения соединения,
// ошибка до коммита откатывает всё целиком.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository строит адаптер персистентности для товаров.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, name, is_in_fridge, created_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	if err := row.Scan(&it.ID, &it.Name, &it.IsInFridge, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

// ListAll возвращает все товары, новые первыми.
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT `+itemColumns+` FROM fridge_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.IsInFridge, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Insert создаёт товар и возвращает созданную строку.
func (r *ItemRepo) Insert(name string, isInFridge bool) (*entity.Item, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	it, err := scanItem(tx.QueryRow(ctx,
		`INSERT INTO fridge_items (name, is_in_fridge) VALUES ($1, $2) RETURNING `+itemColumns,
		name, isInFridge,
	))
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return it, nil
}

// GetByID возвращает товар по id; nil, nil — товара нет.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	it, err := scanItem(conn.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM fridge_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// SetInFridge выставляет флаг и возвращает обновлённую строку;
// nil, nil — строки с таким id уже нет.
func (r *ItemRepo) SetInFridge(id int64, isInFridge bool) (*entity.Item, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	it, err := scanItem(tx.QueryRow(ctx,
		`UPDATE fridge_items SET is_in_fridge = $2 WHERE id = $1 RETURNING `+itemColumns,
		id, isInFridge,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return it, nil
}

// Delete удаляет товар и возвращает снимок удалённой строки;
// nil, nil — строки с таким id уже нет.
func (r *ItemRepo) Delete(id int64) (*entity.Item, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	it, err := scanItem(tx.QueryRow(ctx,
		`DELETE FROM fridge_items WHERE id = $1 RETURNING `+itemColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return it, nil
}

// Counts возвращает общее число товаров и число товаров в холодильнике.
func (r *ItemRepo) Counts() (total, inFridge int64, err error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM fridge_items`).Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("count items: %w", err)
	}
	if err := conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM fridge_items WHERE is_in_fridge = true`).Scan(&inFridge); err != nil {
		return 0, 0, fmt.Errorf("count in fridge: %w", err)
	}
	return total, inFridge, nil
}

// Status возвращает версию и текущее время сервера БД.
func (r *ItemRepo) Status() (*repository.StoreStatus, error) {
	ctx := context.Background()
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	var st repository.StoreStatus
	if err := conn.QueryRow(ctx, `SELECT NOW(), version()`).Scan(&st.Time, &st.Version); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return &st, nil
}
