package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/application/usecase"
	"github.com/holodilnik/fridge-api/internal/domain"
)

// ItemHandler — HTTP-обработчики CRUD-операций над товарами.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler строит обработчик.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// parseID читает числовой параметр пути :id.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List godoc
// @Summary      Список товаров
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/database-items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return storageError(c, err)
	}
	log.Debug().Int("count", len(items)).Msg("получен список товаров")
	return c.JSON(dto.ItemListResponse{
		Count:     len(items),
		Items:     items,
		Timestamp: time.Now(),
	})
}

// Add godoc
// @Summary      Добавить товар
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Название и флаг isInFridge"
// @Success      200   {object}  dto.ItemEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/items/add [post]
func (h *ItemHandler) Add(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	item, err := h.uc.Add(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Название товара обязательно")
		}
		return storageError(c, err)
	}

	log.Info().
		Str("name", item.Name).
		Bool("is_in_fridge", item.IsInFridge).
		Msg("товар добавлен")
	return c.JSON(dto.ItemEnvelope{
		Message:   "Товар добавлен",
		Item:      *item,
		Timestamp: time.Now(),
	})
}

// Toggle godoc
// @Summary      Переместить товар (инвертировать is_in_fridge)
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID товара"
// @Success      200  {object}  dto.ItemEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/move/{id}/toggle [patch]
func (h *ItemHandler) Toggle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "ID должен быть числом")
	}

	item, err := h.uc.Toggle(id)
	if err != nil {
		return storageError(c, err)
	}
	if item == nil {
		return notFound(c, id)
	}

	return c.JSON(dto.ItemEnvelope{
		Message:   "Состояние товара обновлено",
		Item:      *item,
		Timestamp: time.Now(),
	})
}

// Remove godoc
// @Summary      Удалить товар
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID товара"
// @Success      200  {object}  dto.DeletedItemEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/remove/{id} [delete]
func (h *ItemHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "ID должен быть числом")
	}

	item, err := h.uc.Remove(id)
	if err != nil {
		return storageError(c, err)
	}
	if item == nil {
		return notFound(c, id)
	}

	log.Info().Str("name", item.Name).Int64("id", id).Msg("товар удалён")
	return c.JSON(dto.DeletedItemEnvelope{
		Message:     "Товар удалён",
		DeletedItem: *item,
		Timestamp:   time.Now(),
	})
}
