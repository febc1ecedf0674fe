package entity

import "time"

// Item — товар из таблицы fridge_items. Категория не хранится в строке:
// она каждый раз вычисляется по названию (см. domain/category).
type Item struct {
	ID         int64
	Name       string // непустое после обрезки пробелов
	IsInFridge bool
	CreatedAt  time.Time // выставляется базой при вставке
}
