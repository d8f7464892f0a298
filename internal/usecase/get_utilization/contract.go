package get_utilization

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// AllocationRepository интерфейс репозитория бронирований
type AllocationRepository interface {
	GetByDateRange(ctx context.Context, regime domain.Regime, startDate, endDate time.Time) ([]*domain.Allocation, error)
}

// ReportCache кеш готовых отчетов. Может отсутствовать (nil-safe реализация).
type ReportCache interface {
	Version(ctx context.Context) int64
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
