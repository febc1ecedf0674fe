package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/domain"
	"github.com/holodilnik/fridge-api/internal/domain/category"
	"github.com/holodilnik/fridge-api/internal/domain/entity"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

// validate — общий валидатор запросов (теги validate в application/dto).
var validate = validator.New()

// ItemUseCase — CRUD-сценарии над товарами. Категория всегда вычисляется
// на чтении и никогда не хранится.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase строит сценарий.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// List возвращает все товары, новые первыми, с категориями.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toItemResponse(it))
	}
	return items, nil
}

// Add обрезает пробелы в названии, отклоняет пустое
// (domain.ErrInvalidInput, строка не создаётся) и вставляет товар.
// Флаг isInFridge по умолчанию true.
func (uc *ItemUseCase) Add(in dto.AddItemRequest) (*dto.ItemResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	isInFridge := true
	if in.IsInFridge != nil {
		isInFridge = *in.IsInFridge
	}

	it, err := uc.repo.Insert(in.Name, isInFridge)
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// Toggle инвертирует is_in_fridge; nil, nil — товара нет.
func (uc *ItemUseCase) Toggle(id int64) (*dto.ItemResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	updated, err := uc.repo.SetInFridge(id, !current.IsInFridge)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// удалён между чтением и обновлением
		return nil, nil
	}
	resp := toItemResponse(updated)
	return &resp, nil
}

// Remove удаляет товар и возвращает снимок удалённой строки;
// nil, nil — товара нет.
func (uc *ItemUseCase) Remove(id int64) (*dto.ItemResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, nil
	}
	resp := toItemResponse(deleted)
	return &resp, nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		IsInFridge: it.IsInFridge,
		CreatedAt:  it.CreatedAt,
		Category:   category.Categorize(it.Name),
	}
}
