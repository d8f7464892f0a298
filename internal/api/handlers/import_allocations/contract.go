package import_allocations

import (
	"context"

	"github.com/a1exks/FCP-AllocationService/internal/service/interchange"
)

type InterchangeService interface {
	Import(ctx context.Context, payload []byte) (*interchange.ImportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
