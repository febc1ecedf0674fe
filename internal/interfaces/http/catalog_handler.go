package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// CatalogHandler — каталог категорий, фильтрация и поиск.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler строит обработчик.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Categories godoc
// @Summary      Каталог категорий с примерами ключевых слов
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// FilterByCategory godoc
// @Summary      Фильтр товаров по категории (подстрока, без регистра)
// @Tags         catalog
// @Produce      json
// @Param        category  path  string  true  "Категория или её часть"
// @Success      200  {object}  dto.FilterResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/filter-by-category/{category} [get]
func (h *CatalogHandler) FilterByCategory(c *fiber.Ctx) error {
	raw := c.Params("category")
	// кириллица в пути приходит percent-encoded
	query, err := url.PathUnescape(raw)
	if err != nil {
		query = raw
	}

	out, err := h.uc.FilterByCategory(query)
	if err != nil {
		return storageError(c, err)
	}
	log.Debug().Str("category", query).Int("count", out.Count).Msg("фильтр по категории")
	return c.JSON(out)
}

// Search godoc
// @Summary      Поиск товаров по названию, категории и ключевым словам
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "Поисковый запрос"
// @Success      200   {object}  dto.SearchResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/search-products [post]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	out, err := h.uc.Search(in.Query)
	if err != nil {
		return storageError(c, err)
	}
	log.Debug().Str("query", out.SearchQuery).Int("found", out.FoundCount).Msg("поиск товаров")
	return c.JSON(out)
}
