package usecase

import (
	"strings"
	"time"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/domain/category"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

// CatalogUseCase — каталог категорий, фильтрация и поиск. Вся работа с
// таблицей ключевых слов идёт через domain/category.
type CatalogUseCase struct {
	repo repository.ItemRepository
}

// NewCatalogUseCase строит сценарий.
func NewCatalogUseCase(repo repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Categories возвращает фиксированный каталог с примерами ключевых слов
// (до трёх на категорию). База не затрагивается.
func (uc *CatalogUseCase) Categories() dto.CategoriesResponse {
	return dto.CategoriesResponse{
		Categories:       category.Names(),
		TotalCategories:  category.Total(),
		Timestamp:        time.Now(),
		CategoryExamples: category.Examples(3),
	}
}

// FilterByCategory возвращает товары, чья вычисленная категория содержит
// запрос как подстроку (без учёта регистра). Пустой результат — не
// ошибка.
func (uc *CatalogUseCase) FilterByCategory(query string) (*dto.FilterResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	items := make([]dto.ItemResponse, 0)
	for _, it := range list {
		if strings.Contains(category.Categorize(it.Name), needle) {
			items = append(items, toItemResponse(it))
		}
	}

	return &dto.FilterResponse{
		Category:  query,
		Count:     len(items),
		Items:     items,
		Timestamp: time.Now(),
	}, nil
}

// Search ищет товары по категории, названию и ключевым словам категории,
// точно названной запросом. Пустой или пробельный запрос даёт
// валидационный ответ без обращения к базе.
func (uc *CatalogUseCase) Search(query string) (*dto.SearchResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return &dto.SearchResponse{
			Error:       "Validation error",
			Message:     "Пустой поисковый запрос",
			SearchQuery: "",
			FoundCount:  0,
			Items:       []dto.SearchItem{},
		}, nil
	}

	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	// запрос может точно называть категорию — тогда ищем и по её словам
	keywords := category.Keywords(q)

	found := make([]dto.SearchItem, 0)
	for _, it := range list {
		cat := category.Categorize(it.Name)
		nameLower := strings.ToLower(it.Name)

		match := strings.Contains(cat, q) || strings.Contains(nameLower, q)
		if !match {
			for _, kw := range keywords {
				if strings.Contains(nameLower, kw) {
					match = true
					break
				}
			}
		}
		if !match {
			continue
		}

		matchType := "name"
		if strings.Contains(cat, q) {
			matchType = "category"
		}
		found = append(found, dto.SearchItem{
			ItemResponse: toItemResponse(it),
			MatchType:    matchType,
		})
	}

	now := time.Now()
	return &dto.SearchResponse{
		SearchQuery: q,
		FoundCount:  len(found),
		Items:       found,
		Timestamp:   &now,
	}, nil
}
