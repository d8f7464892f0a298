// Package calendar generates the fixed slot-label sequences of the two
// booking regimes and provides the span arithmetic every booking goes
// through. Pure and deterministic: the sequences are static tables.
package calendar

import (
	"errors"
	"fmt"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// ErrOutOfRange is returned when a start label is not on the calendar or
// a slot run would extend past the closing boundary. Callers must treat
// it exactly like a booking conflict: reject, write nothing.
var ErrOutOfRange = errors.New("calendar: slot run out of calendar range")

// StepMinutes returns the slot width of a regime
func StepMinutes(regime domain.Regime) int {
	if regime == domain.RegimeTraining {
		return domain.TrainingStepMinutes
	}
	return domain.MatchDayStepMinutes
}

// Labels returns the ordered sequence of startable time labels for a
// regime. The closing time (21:00 in both regimes) is a boundary only:
// no duration fits after it, so it is never part of the sequence.
func Labels(regime domain.Regime) []types.TimeString {
	var open, close string
	step := StepMinutes(regime)
	if regime == domain.RegimeTraining {
		open, close = domain.TrainingOpeningTime, domain.TrainingClosingTime
	} else {
		open, close = domain.MatchDayOpeningTime, domain.MatchDayClosingTime
	}

	// Both windows are whole multiples of the step, so parsing cannot
	// fail for the compiled-in constants.
	current := types.TimeString(open)
	boundary := types.TimeString(close)

	labels := make([]types.TimeString, 0, 64)
	for current.IsBefore(boundary) {
		labels = append(labels, current)
		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}
	return labels
}

// SlotCount converts a duration into a slot count for a regime,
// rounding partial slots up.
func SlotCount(regime domain.Regime, durationMinutes int) int {
	step := StepMinutes(regime)
	return (durationMinutes + step - 1) / step
}

// SlotsSpanned returns the contiguous run of count labels beginning at
// start. This is the authoritative boundary check: an unknown start or
// a run that overshoots the closing boundary yields ErrOutOfRange.
func SlotsSpanned(regime domain.Regime, start types.TimeString, count int) ([]types.TimeString, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: slot count %d must be positive", ErrOutOfRange, count)
	}

	labels := Labels(regime)
	startIdx := -1
	for i, label := range labels {
		if label == start {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %s is not a %s slot", ErrOutOfRange, start, regime)
	}
	if startIdx+count > len(labels) {
		return nil, fmt.Errorf("%w: %d slots from %s overrun the %s closing time", ErrOutOfRange, count, start, regime)
	}

	run := make([]types.TimeString, count)
	copy(run, labels[startIdx:startIdx+count])
	return run, nil
}
