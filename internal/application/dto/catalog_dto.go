package dto

import "time"

// CategoriesResponse — статический каталог категорий с примерами
// ключевых слов.
type CategoriesResponse struct {
	Categories       []string            `json:"categories"`
	TotalCategories  int                 `json:"total_categories"`
	Timestamp        time.Time           `json:"timestamp"`
	CategoryExamples map[string][]string `json:"category_examples"`
}

// FilterResponse — результат фильтра по категории. Пустой список — не
// ошибка.
type FilterResponse struct {
	Category  string         `json:"category"`
	Count     int            `json:"count"`
	Items     []ItemResponse `json:"items"`
	Timestamp time.Time      `json:"timestamp"`
}

// SearchRequest — тело POST /api/search-products.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchItem — найденный товар с типом совпадения: "category", если
// запрос входит в название категории, иначе "name".
type SearchItem struct {
	ItemResponse
	MatchType string `json:"match_type"`
}

// SearchResponse — результат поиска. Для пустого запроса заполняются
// Error и Message — это валидационный ответ, а не ошибка HTTP, поэтому
// Timestamp в нём отсутствует.
type SearchResponse struct {
	Error       string       `json:"error,omitempty"`
	Message     string       `json:"message,omitempty"`
	SearchQuery string       `json:"search_query"`
	FoundCount  int          `json:"found_count"`
	Items       []SearchItem `json:"items"`
	Timestamp   *time.Time   `json:"timestamp,omitempty"`
}
