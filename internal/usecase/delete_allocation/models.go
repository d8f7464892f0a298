package delete_allocation

import (
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Request адресует бронирование любой из его ячеек
type Request struct {
	Regime  domain.Regime
	Date    time.Time
	Time    types.TimeString
	PitchID string
	Section domain.SectionID
}

// Response сведения об удаленном бронировании
type Response struct {
	AllocationID string
	TeamName     string
	CellsRemoved int64
}
