package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/holodilnik/fridge-api/internal/application/dto"
)

// badRequest отвечает конвертом 400 с описанием ошибки валидации.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:     "Validation error",
		Message:   message,
		Timestamp: time.Now(),
	})
}

// notFound отвечает конвертом 404 для неизвестного id.
func notFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error:     "Not found",
		Message:   fmt.Sprintf("Товар с ID %d не найден", id),
		Timestamp: time.Now(),
	})
}

// storageError логирует сбой хранилища на сервере и отвечает конвертом
// 500. Наружу уходит только текст ошибки, без внутреннего состояния.
func storageError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("ошибка обращения к БД")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:     "Database error",
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}
