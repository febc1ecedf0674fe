package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holodilnik/fridge-api/internal/application/usecase"
)

// Инварианты агрегата: суммы по категориям сходятся с глобальными
// итогами, проценты внутри категории дают 100.
func TestStatsUseCase_Statistics(t *testing.T) {
	repo := newFakeRepo()
	repo.Insert("Молоко", true)   //nolint:errcheck
	repo.Insert("Кефир", false)   //nolint:errcheck
	repo.Insert("Сыр", true)      //nolint:errcheck
	repo.Insert("Банан", true)    //nolint:errcheck
	repo.Insert("Шоколад", false) //nolint:errcheck

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Statistics()

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalProducts)
	assert.Equal(t, 3, resp.Summary.TotalInFridge)
	assert.Equal(t, 2, resp.Summary.TotalOutOfFridge)

	sumTotals := 0
	for name, s := range resp.Categories {
		sumTotals += s.Total
		assert.Equal(t, s.Total, s.InFridge+s.OutOfFridge, "категория %q", name)
		assert.InDelta(t, 100.0, s.InFridgePercentage+s.OutOfFridgePercentage, 0.1,
			"категория %q", name)
	}
	assert.Equal(t, resp.TotalProducts, sumTotals)

	dairy := resp.Categories["молочные"]
	assert.Equal(t, 3, dairy.Total)
	assert.Equal(t, 2, dairy.InFridge)
	assert.Equal(t, 1, dairy.OutOfFridge)

	other := resp.Categories["другое"]
	assert.Equal(t, 1, other.Total)
	assert.Equal(t, 0.0, other.InFridgePercentage)
	assert.Equal(t, 100.0, other.OutOfFridgePercentage)
}

// Округление десятичное, до одного знака: 2 из 3 — это 66.7, а не
// двоичное 66.66666666666667.
func TestStatsUseCase_Statistics_Okruglenie(t *testing.T) {
	repo := newFakeRepo()
	repo.Insert("Молоко", true) //nolint:errcheck
	repo.Insert("Кефир", true)  //nolint:errcheck
	repo.Insert("Сыр", false)   //nolint:errcheck

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Statistics()

	require.NoError(t, err)
	dairy := resp.Categories["молочные"]
	assert.Equal(t, 66.7, dairy.InFridgePercentage)
	assert.Equal(t, 33.3, dairy.OutOfFridgePercentage)
}

// Пустая коллекция — нули и пустая карта категорий.
func TestStatsUseCase_Statistics_PustayaKollekciya(t *testing.T) {
	uc := usecase.NewStatsUseCase(newFakeRepo())

	resp, err := uc.Statistics()

	require.NoError(t, err)
	assert.Zero(t, resp.TotalProducts)
	assert.Empty(t, resp.Categories)
	assert.Zero(t, resp.Summary.TotalInFridge)
	assert.Zero(t, resp.Summary.TotalOutOfFridge)
}
