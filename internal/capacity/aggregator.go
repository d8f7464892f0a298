// Package capacity is the read-only utilization aggregator: it turns a
// day's committed allocation records into per-pitch AM/PM occupancy
// percentages and the traffic-light classification of the heat map.
package capacity

import (
	"math"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Period is one half of the reporting day
type Period string

const (
	PeriodAM Period = "AM" // operating slots before noon
	PeriodPM Period = "PM" // noon to closing
)

// TrafficLight classifies a utilization percentage for the heat map
type TrafficLight string

const (
	LightGreen  TrafficLight = "green"
	LightYellow TrafficLight = "yellow"
	LightOrange TrafficLight = "orange"
	LightRed    TrafficLight = "red"
)

// Classify maps a percentage onto its traffic-light band.
// Bands are inclusive on their lower bound: 50 is already yellow,
// 70 orange, 90 red.
func Classify(percent int) TrafficLight {
	switch {
	case percent >= 90:
		return LightRed
	case percent >= 70:
		return LightOrange
	case percent >= 50:
		return LightYellow
	default:
		return LightGreen
	}
}

// DayRecords holds one date's committed cell records of both booking
// regimes. The two grids never share conflicts, but the occupancy view
// reads the whole facility.
type DayRecords struct {
	Training []*domain.Allocation
	MatchDay []*domain.Allocation
}

// PercentUtilized computes the occupancy of one pitch for one period as
// an integer 0..100. The day is normalized onto the fine 15-minute
// match-day grid: a 30-minute training cell covers two fine labels.
// Every physically distinct (label, section) cell counts once no matter
// how many slots or sections its booking spans. A pitch without
// configured sections reports 0.
func PercentUtilized(pitch *domain.Pitch, records DayRecords, period Period) int {
	sections := pitch.SectionCount()
	if sections == 0 {
		return 0
	}

	periodLabels := labelsInPeriod(period)
	totalCells := sections * len(periodLabels)
	if totalCells == 0 {
		return 0
	}

	inPeriod := make(map[types.TimeString]bool, len(periodLabels))
	for _, label := range periodLabels {
		inPeriod[label] = true
	}

	type fineCell struct {
		label   types.TimeString
		section domain.SectionID
	}
	occupied := make(map[fineCell]bool)

	mark := func(recs []*domain.Allocation, regime domain.Regime) {
		step := calendar.StepMinutes(regime)
		for _, rec := range recs {
			if rec.PitchID != pitch.ID {
				continue
			}
			// Grass is an overflow area outside pitch capacity.
			if rec.Section == domain.SectionGrass {
				continue
			}
			label, err := rec.TimeLabel(step)
			if err != nil {
				continue
			}
			// Expand the cell onto the fine grid.
			for offset := 0; offset < step; offset += domain.MatchDayStepMinutes {
				fine, err := label.AddMinutes(offset)
				if err != nil {
					continue
				}
				if inPeriod[fine] {
					occupied[fineCell{label: fine, section: rec.Section}] = true
				}
			}
		}
	}
	mark(records.Training, domain.RegimeTraining)
	mark(records.MatchDay, domain.RegimeMatchDay)

	percent := int(math.Round(float64(len(occupied)) / float64(totalCells) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// labelsInPeriod returns the fine 15-minute labels of a period:
// AM is everything before noon, PM is noon up to closing.
func labelsInPeriod(period Period) []types.TimeString {
	noon := types.TimeString(domain.NoonTime)
	out := make([]types.TimeString, 0, 36)
	for _, label := range calendar.Labels(domain.RegimeMatchDay) {
		if period == PeriodAM && label.IsBefore(noon) {
			out = append(out, label)
		}
		if period == PeriodPM && !label.IsBefore(noon) {
			out = append(out, label)
		}
	}
	return out
}
