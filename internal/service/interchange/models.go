package interchange

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// Envelope стабильный формат файла экспорта. Импорт принимает как
// полный конверт, так и голую карту allocations (старый формат).
type Envelope struct {
	Allocations map[string]Document `json:"allocations"`
	ExportDate  string              `json:"exportDate"`
	AppVersion  string              `json:"appVersion"`
}

// Document одна ячейка сетки в файле экспорта. Ключ карты —
// сериализованный ключ ячейки (date|time|pitch|section).
type Document struct {
	AllocationID  string   `json:"allocationId"`
	Regime        string   `json:"regime"`
	Team          string   `json:"team"`
	Color         string   `json:"color"`
	Date          string   `json:"date"`
	Pitch         string   `json:"pitch"`
	Section       string   `json:"section"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	TotalSlots    int      `json:"totalSlots"`
	SlotIndex     int      `json:"slotIndex"`
	IsMultiSlot   bool     `json:"isMultiSlot"`
	IsPartOfGroup bool     `json:"isPartOfGroup"`
	GroupSections []string `json:"groupSections,omitempty"`
}

// ImportResult итог применения файла импорта
type ImportResult struct {
	Groups int // логических бронирований
	Cells  int // записанных ячеек
}

// AllocationRepository интерфейс репозитория бронирований
type AllocationRepository interface {
	GetByDate(ctx context.Context, regime domain.Regime, date time.Time) ([]*domain.Allocation, error)
	GetByDateRange(ctx context.Context, regime domain.Regime, startDate, endDate time.Time) ([]*domain.Allocation, error)
	CreateBatch(ctx context.Context, regime domain.Regime, records []*domain.Allocation) error
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
