package dto

import "time"

// RootResponse — метаданные сервиса для GET /.
type RootResponse struct {
	Message        string         `json:"message"`
	Service        string         `json:"service"`
	Version        string         `json:"version"`
	Timestamp      time.Time      `json:"timestamp"`
	DatabaseConfig DatabaseConfig `json:"database_config"`
	Endpoints      []EndpointInfo `json:"endpoints"`
}

// DatabaseConfig — параметры базы, отражаемые в корневом эндпоинте.
type DatabaseConfig struct {
	Host      string `json:"host"`
	Database  string `json:"database"`
	Connected bool   `json:"connected"`
}

// EndpointInfo — описание маршрута в каталоге эндпоинтов.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// HealthResponse — GET /health. Сбой базы отражается в payload, сам
// вызов всегда отвечает 200.
type HealthResponse struct {
	Status      string         `json:"status"`
	Service     string         `json:"service"`
	Timestamp   time.Time      `json:"timestamp"`
	Database    DatabaseHealth `json:"database"`
	MemoryUsage string         `json:"memory_usage,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// DatabaseHealth — состояние базы в ответе /health.
type DatabaseHealth struct {
	Status  string `json:"status"`
	Time    string `json:"time,omitempty"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TestConnectionResponse — GET /api/test-connection.
type TestConnectionResponse struct {
	Status    string             `json:"status"`
	Database  DatabaseDiagnostic `json:"database"`
	Timestamp time.Time          `json:"timestamp"`
}

// DatabaseDiagnostic — результат диагностических запросов к базе.
type DatabaseDiagnostic struct {
	Version          string `json:"version,omitempty"`
	Connection       string `json:"connection"`
	TotalItems       *int64 `json:"total_items,omitempty"`
	ItemsInFridge    *int64 `json:"items_in_fridge,omitempty"`
	ItemsOutOfFridge *int64 `json:"items_out_of_fridge,omitempty"`
	Error            string `json:"error,omitempty"`
}
