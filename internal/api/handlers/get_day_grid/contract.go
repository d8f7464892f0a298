package get_day_grid

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

type AllocationService interface {
	DayGrid(ctx context.Context, regime domain.Regime, date time.Time, pitchID string) (*models.DayGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
