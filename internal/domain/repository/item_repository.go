package repository

import (
	"time"

	"github.com/holodilnik/fridge-api/internal/domain/entity"
)

// StoreStatus — диагностика соединения с базой.
type StoreStatus struct {
	Version string
	Time    time.Time
}

// ItemRepository — порт доступа к таблице fridge_items.
//
// Отсутствие записи — обычный, неошибочный исход: методы возвращают
// (nil, nil). Одновременные toggle/delete по одному id не блокируются —
// побеждает последняя запись (документированная гонка, как в исходном
// сервисе).
type ItemRepository interface {
	// ListAll возвращает все товары, новые первыми (created_at DESC).
	ListAll() ([]*entity.Item, error)
	// Insert создаёт товар и возвращает созданную строку.
	Insert(name string, isInFridge bool) (*entity.Item, error)
	// GetByID возвращает товар по id; nil, nil — товара нет.
	GetByID(id int64) (*entity.Item, error)
	// SetInFridge выставляет флаг и возвращает обновлённую строку.
	SetInFridge(id int64, isInFridge bool) (*entity.Item, error)
	// Delete удаляет товар и возвращает снимок удалённой строки.
	Delete(id int64) (*entity.Item, error)

	// Counts — счётчики для /api/test-connection.
	Counts() (total, inFridge int64, err error)
	// Status — версия и время сервера БД для /health.
	Status() (*StoreStatus, error)
}
