package get_layout_choices

import (
	"context"

	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

type AllocationService interface {
	LayoutChoices(ctx context.Context, teamName, pitchID string) (*models.LayoutChoicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
