package get_utilization

import (
	getUtilization "github.com/a1exks/FCP-AllocationService/internal/usecase/get_utilization"
)

// UtilizationResponse HTTP response model.
// Модель use case уже несет JSON-теги (она кешируется в готовом виде),
// поэтому отдается как есть.
type UtilizationResponse = getUtilization.Response
