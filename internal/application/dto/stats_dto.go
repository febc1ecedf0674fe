package dto

import "time"

// CategoryStats — агрегаты по одной категории. Проценты считаются только
// при total > 0 и округляются до одного знака после запятой.
type CategoryStats struct {
	Total                 int     `json:"total"`
	InFridge              int     `json:"in_fridge"`
	OutOfFridge           int     `json:"out_of_fridge"`
	InFridgePercentage    float64 `json:"in_fridge_percentage"`
	OutOfFridgePercentage float64 `json:"out_of_fridge_percentage"`
}

// StatsSummary — глобальные итоги по всем категориям.
type StatsSummary struct {
	TotalInFridge    int `json:"total_in_fridge"`
	TotalOutOfFridge int `json:"total_out_of_fridge"`
}

// StatisticsResponse — конверт GET /api/statistics.
type StatisticsResponse struct {
	TotalProducts int                      `json:"total_products"`
	Categories    map[string]CategoryStats `json:"categories"`
	Timestamp     time.Time                `json:"timestamp"`
	Summary       StatsSummary             `json:"summary"`
}
