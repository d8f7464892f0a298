package create_allocation

import (
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Режим определяет, какие поля обязательны: тренировка берет секции и
// длительность напрямую, матчевый день — метку раскладки (секции и
// длительность выводятся из возрастной категории команды).
type Request struct {
	Regime    domain.Regime
	TeamName  string
	Date      time.Time
	PitchID   string
	StartTime types.TimeString

	// Только тренировочный режим
	Sections        []domain.SectionID
	DurationMinutes int

	// Только матчевый режим
	LayoutLabel string
}

// Response модель ответа с созданным бронированием
type Response struct {
	AllocationID    string
	Regime          domain.Regime
	TeamName        string
	TeamColor       string
	Bracket         domain.AgeBracket
	Date            time.Time
	PitchID         string
	Sections        []domain.SectionID
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	TotalSlots      int
	CellCount       int
}
