package clear_day

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

type AllocationService interface {
	ClearDay(ctx context.Context, date time.Time) (*models.ClearDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
