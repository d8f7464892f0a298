package get_utilization

import (
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/capacity"
)

// Request отчетный период (обе даты включительно)
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response тепловая карта загрузки: поле × дата × половина дня.
// JSON-теги нужны для кеширования готового отчета.
type Response struct {
	Days []DayUtilization `json:"days"`
}

// DayUtilization загрузка всех полей за один день
type DayUtilization struct {
	Date    string             `json:"date"`
	Pitches []PitchUtilization `json:"pitches"`
}

// PitchUtilization загрузка одного поля за день
type PitchUtilization struct {
	PitchID     string            `json:"pitchId"`
	DisplayName string            `json:"displayName"`
	AM          PeriodUtilization `json:"am"`
	PM          PeriodUtilization `json:"pm"`
}

// PeriodUtilization процент занятости половины дня и его светофорная классификация
type PeriodUtilization struct {
	Percent int                   `json:"percent"`
	Light   capacity.TrafficLight `json:"light"`
}
