package allocations

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// AllocationRepository интерфейс репозитория бронирований
type AllocationRepository interface {
	GetByDate(ctx context.Context, regime domain.Regime, date time.Time) ([]*domain.Allocation, error)
	DeleteByDate(ctx context.Context, regime domain.Regime, date time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReportInvalidator сбрасывает закешированные отчеты загрузки после записи
type ReportInvalidator interface {
	BumpVersion(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
