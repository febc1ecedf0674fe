package usecase

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/holodilnik/fridge-api/internal/application/dto"
	"github.com/holodilnik/fridge-api/internal/domain/repository"
)

// SystemUseCase — диагностика сервиса и соединения с базой. Сбои базы
// здесь не ошибки HTTP: они возвращаются в payload.
type SystemUseCase struct {
	repo repository.ItemRepository
}

// NewSystemUseCase строит сценарий.
func NewSystemUseCase(repo repository.ItemRepository) *SystemUseCase {
	return &SystemUseCase{repo: repo}
}

// Health проверяет доступность базы одним запросом.
func (uc *SystemUseCase) Health(service string) dto.HealthResponse {
	st, err := uc.repo.Status()
	if err != nil {
		return dto.HealthResponse{
			Status:    "unhealthy",
			Service:   service,
			Timestamp: time.Now(),
			Database: dto.DatabaseHealth{
				Status: "disconnected",
				Error:  err.Error(),
			},
			Message: "API работает, но база данных недоступна",
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	// версия до первой запятой: "PostgreSQL 16.2 on x86_64..." и т.п.
	version := st.Version
	if i := strings.Index(version, ","); i > 0 {
		version = version[:i]
	}

	return dto.HealthResponse{
		Status:    "healthy",
		Service:   service,
		Timestamp: time.Now(),
		Database: dto.DatabaseHealth{
			Status:  "connected",
			Time:    st.Time.Format(time.RFC3339Nano),
			Version: version,
		},
		MemoryUsage: fmt.Sprintf("%.2f MB", float64(mem.HeapAlloc)/1024/1024),
	}
}

// TestConnection выполняет базовые запросы к таблице и возвращает
// счётчики.
func (uc *SystemUseCase) TestConnection() dto.TestConnectionResponse {
	st, err := uc.repo.Status()
	if err == nil {
		var total, inFridge int64
		total, inFridge, err = uc.repo.Counts()
		if err == nil {
			out := total - inFridge
			return dto.TestConnectionResponse{
				Status: "success",
				Database: dto.DatabaseDiagnostic{
					Version:          st.Version,
					Connection:       "established",
					TotalItems:       &total,
					ItemsInFridge:    &inFridge,
					ItemsOutOfFridge: &out,
				},
				Timestamp: time.Now(),
			}
		}
	}

	return dto.TestConnectionResponse{
		Status: "error",
		Database: dto.DatabaseDiagnostic{
			Connection: "failed",
			Error:      err.Error(),
		},
		Timestamp: time.Now(),
	}
}
