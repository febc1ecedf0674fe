package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/application/usecase"
	"github.com/holodilnik/fridge-api/internal/domain"
	"github.com/holodilnik/fridge-api/internal/domain/entity"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Фейковый репозиторий
// ──────────────────────────────────────────────────────────────────────────────

// fakeItemRepo — репозиторий в памяти для юнит-тестов сценариев.
// Повторяет контракт порта: отсутствие записи — это nil, nil.
type fakeItemRepo struct {
	items     []*entity.Item
	nextID    int64
	listCalls int
	failWith  error
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func newFakeRepo(names ...string) *fakeItemRepo {
	r := &fakeItemRepo{}
	for _, name := range names {
		r.Insert(name, true) //nolint:errcheck
	}
	return r
}

func (r *fakeItemRepo) ListAll() ([]*entity.Item, error) {
	r.listCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*entity.Item, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeItemRepo) Insert(name string, isInFridge bool) (*entity.Item, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.nextID++
	it := &entity.Item{
		ID:         r.nextID,
		Name:       name,
		IsInFridge: isInFridge,
		CreatedAt:  time.Now().Add(time.Duration(r.nextID) * time.Millisecond),
	}
	r.items = append(r.items, it)
	snapshot := *it
	return &snapshot, nil
}

func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, it := range r.items {
		if it.ID == id {
			snapshot := *it
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) SetInFridge(id int64, isInFridge bool) (*entity.Item, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, it := range r.items {
		if it.ID == id {
			it.IsInFridge = isInFridge
			snapshot := *it
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Delete(id int64) (*entity.Item, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for i, it := range r.items {
		if it.ID == id {
			snapshot := *it
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Counts() (int64, int64, error) {
	if r.failWith != nil {
		return 0, 0, r.failWith
	}
	var total, inFridge int64
	for _, it := range r.items {
		total++
		if it.IsInFridge {
			inFridge++
		}
	}
	return total, inFridge, nil
}

func (r *fakeItemRepo) Status() (*repository.StoreStatus, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return &repository.StoreStatus{
		Version: "PostgreSQL 16.2 (Debian), compiled by gcc",
		Time:    time.Now(),
	}, nil
}

func boolPtr(v bool) *bool { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

// Название обрезается, категория вычисляется, флаг по умолчанию true.
func TestItemUseCase_Add(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewItemUseCase(repo)

	item, err := uc.Add(dto.AddItemRequest{Name: "  Молоко  "})

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Молоко", item.Name)
	assert.Equal(t, "молочные", item.Category)
	assert.True(t, item.IsInFridge)
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

// Явный isInFridge=false сохраняется как есть.
func TestItemUseCase_Add_YavnyFlag(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewItemUseCase(repo)

	item, err := uc.Add(dto.AddItemRequest{Name: "Хлеб", IsInFridge: boolPtr(false)})

	require.NoError(t, err)
	assert.False(t, item.IsInFridge)
}

// Пустое или пробельное название отклоняется, строка не создаётся.
func TestItemUseCase_Add_PustoeNazvanie(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewItemUseCase(repo)

	for _, name := range []string{"", "   ", "\t"} {
		item, err := uc.Add(dto.AddItemRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "название: %q", name)
		assert.Nil(t, item)
	}
	assert.Empty(t, repo.items, "в хранилище не должно появиться строк")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// Новые товары идут первыми, у каждого проставлена категория.
func TestItemUseCase_List(t *testing.T) {
	repo := newFakeRepo("Молоко", "Банан")
	uc := usecase.NewItemUseCase(repo)

	items, err := uc.List()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Банан", items[0].Name)
	assert.Equal(t, "фрукты", items[0].Category)
	assert.Equal(t, "Молоко", items[1].Name)
	assert.Equal(t, "молочные", items[1].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle
// ──────────────────────────────────────────────────────────────────────────────

// Два переключения возвращают исходное значение флага.
func TestItemUseCase_Toggle(t *testing.T) {
	repo := newFakeRepo("Кефир")
	uc := usecase.NewItemUseCase(repo)

	first, err := uc.Toggle(1)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, first.IsInFridge)

	second, err := uc.Toggle(1)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.True(t, second.IsInFridge)
}

// Неизвестный id — nil, nil, без ошибки.
func TestItemUseCase_Toggle_NetTovara(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeRepo())

	item, err := uc.Toggle(999)

	require.NoError(t, err)
	assert.Nil(t, item)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

// Удаление возвращает снимок строки; повторное удаление — nil, nil.
func TestItemUseCase_Remove(t *testing.T) {
	repo := newFakeRepo("Огурец")
	uc := usecase.NewItemUseCase(repo)

	deleted, err := uc.Remove(1)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Огурец", deleted.Name)
	assert.Equal(t, "овощи", deleted.Category)
	assert.Empty(t, repo.items)

	again, err := uc.Remove(1)
	require.NoError(t, err)
	assert.Nil(t, again)
}
