package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// StatsHandler — статистика по категориям.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler строит обработчик.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Statistics godoc
// @Summary      Статистика по категориям и глобальные итоги
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics [get]
func (h *StatsHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics()
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(out)
}
