package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/domain/category"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

// StatsUseCase — агрегация статистики по категориям.
type StatsUseCase struct {
	repo repository.ItemRepository
}

// NewStatsUseCase строит сценарий.
func NewStatsUseCase(repo repository.ItemRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Statistics считает для каждой вычисленной категории total, in_fridge,
// out_of_fridge и проценты, плюс глобальные итоги. Для непустой коллекции
// выполняются инварианты: сумма total по категориям равна total_products,
// in_fridge + out_of_fridge = total, проценты в сумме дают 100 (с
// точностью округления).
func (uc *StatsUseCase) Statistics() (*dto.StatisticsResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	cats := make(map[string]dto.CategoryStats)
	totalIn, totalOut := 0, 0
	for _, it := range list {
		cat := category.Categorize(it.Name)
		s := cats[cat]
		s.Total++
		if it.IsInFridge {
			s.InFridge++
			totalIn++
		} else {
			s.OutOfFridge++
			totalOut++
		}
		cats[cat] = s
	}

	for name, s := range cats {
		if s.Total > 0 {
			s.InFridgePercentage = percentage(s.InFridge, s.Total)
			s.OutOfFridgePercentage = percentage(s.OutOfFridge, s.Total)
			cats[name] = s
		}
	}

	return &dto.StatisticsResponse{
		TotalProducts: len(list),
		Categories:    cats,
		Timestamp:     time.Now(),
		Summary: dto.StatsSummary{
			TotalInFridge:    totalIn,
			TotalOutOfFridge: totalOut,
		},
	}, nil
}

// percentage — count/total*100 с округлением до одного знака. Деление
// идёт в decimal, чтобы округление было десятичным, а не двоичным.
func percentage(count, total int) float64 {
	p := decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
	f, _ := p.Float64()
	return f
}
