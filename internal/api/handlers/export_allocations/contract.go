package export_allocations

import (
	"context"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/service/interchange"
)

type InterchangeService interface {
	Export(ctx context.Context, startDate, endDate time.Time) (*interchange.Envelope, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
