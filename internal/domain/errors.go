package domain

import "errors"

// Ошибки домена (без внешних зависимостей).
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrInvalidInput = errors.New("некорректные входные данные")
)
