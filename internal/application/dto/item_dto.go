package dto

import "time"

// AddItemRequest — тело POST /api/items/add. Флаг isInFridge опционален:
// по умолчанию товар кладётся в холодильник.
type AddItemRequest struct {
	Name       string `json:"name" validate:"required"`
	IsInFridge *bool  `json:"isInFridge"`
}

// ItemResponse — товар с вычисленной категорией.
type ItemResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	IsInFridge bool      `json:"is_in_fridge"`
	CreatedAt  time.Time `json:"created_at"`
	Category   string    `json:"category"`
}

// ItemListResponse — конверт списка товаров.
type ItemListResponse struct {
	Count     int            `json:"count"`
	Items     []ItemResponse `json:"items"`
	Timestamp time.Time      `json:"timestamp"`
}

// ItemEnvelope — конверт ответов add и toggle.
type ItemEnvelope struct {
	Message   string       `json:"message"`
	Item      ItemResponse `json:"item"`
	Timestamp time.Time    `json:"timestamp"`
}

// DeletedItemEnvelope — конверт удаления: снимок удалённой строки.
type DeletedItemEnvelope struct {
	Message     string       `json:"message"`
	DeletedItem ItemResponse `json:"deleted_item"`
	Timestamp   time.Time    `json:"timestamp"`
}

// ErrorResponse — тело ошибки HTTP.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
