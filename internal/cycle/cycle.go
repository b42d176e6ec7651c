package cycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

var ErrInvalidCycleDay = errors.New("cycle: cycle day must be at least 1")

// Ovulation is confirmed by a basal body temperature rise inside this band.
// Rises outside it are treated as non-significant readings, not clamped.
const (
	MinValidTempRise = 0.3
	MaxValidTempRise = 0.5
)

// Config fixes the day-range buckets of the phase model. Days are inclusive
// upper bounds except OvulationDay, which is a single day.
type Config struct {
	MenstrualEndDay  int
	FollicularEndDay int
	OvulationDay     int
	CycleLength      int
	FertileDaysPre   int
	FertileDaysPost  int
}

// DefaultConfig is the 28-day reference cycle: menstrual days 1-5,
// follicular 6-13, ovulation day 14, luteal 15 onward.
func DefaultConfig() Config {
	return Config{
		MenstrualEndDay:  5,
		FollicularEndDay: 13,
		OvulationDay:     14,
		CycleLength:      28,
		FertileDaysPre:   2,
		FertileDaysPost:  2,
	}
}

type Model struct {
	cfg Config
}

func NewModel(cfg Config) *Model {
	if cfg.CycleLength <= 0 {
		cfg = DefaultConfig()
	}
	return &Model{cfg: cfg}
}

// Compute derives the cycle state for the given day. basalTemp is today's
// basal body temperature, baselineTemp the user's follicular baseline; the
// difference only counts as an ovulation signal when it falls inside the
// valid rise band and the day is past ovulation. An out-of-band rise yields
// a zero TempRiseFromBaseline and sets AmbiguousTempReading so the caller
// can surface the reading instead of silently trusting it.
func (m *Model) Compute(cycleDay int, basalTemp, baselineTemp float64, today time.Time) (model.CycleState, error) {
	if cycleDay < 1 {
		return model.CycleState{}, fmt.Errorf("%w: %d", ErrInvalidCycleDay, cycleDay)
	}

	phase := m.phaseForDay(cycleDay)
	postOvulation := cycleDay > m.cfg.OvulationDay

	rise := basalTemp - baselineTemp
	tempRise := 0.0
	ambiguous := false
	if postOvulation {
		if rise >= MinValidTempRise && rise <= MaxValidTempRise {
			tempRise = rise
		} else if rise > 0 {
			ambiguous = true
		}
	}

	ovulation := today.AddDate(0, 0, m.cfg.OvulationDay-cycleDay)
	nextPeriod := today.AddDate(0, 0, m.cfg.CycleLength-cycleDay+1)

	fertile := cycleDay >= m.cfg.OvulationDay-m.cfg.FertileDaysPre &&
		cycleDay <= m.cfg.OvulationDay+m.cfg.FertileDaysPost

	return model.CycleState{
		CycleDay:             cycleDay,
		Phase:                phase,
		EstimatedOvulation:   &ovulation,
		NextPeriod:           &nextPeriod,
		FertileWindow:        fertile,
		BasalBodyTemp:        basalTemp,
		TempRiseFromBaseline: tempRise,
		AmbiguousTempReading: ambiguous,
	}, nil
}

// CycleLength reports the configured reference cycle length in days.
func (m *Model) CycleLength() int {
	return m.cfg.CycleLength
}

// LutealActive reports whether the luteal readiness dampening applies for
// this state.
func LutealActive(state *model.CycleState) bool {
	return state != nil && state.Phase == model.PhaseLuteal
}

func (m *Model) phaseForDay(cycleDay int) model.CyclePhase {
	switch {
	case cycleDay <= m.cfg.MenstrualEndDay:
		return model.PhaseMenstrual
	case cycleDay <= m.cfg.FollicularEndDay:
		return model.PhaseFollicular
	case cycleDay == m.cfg.OvulationDay:
		return model.PhaseOvulation
	default:
		return model.PhaseLuteal
	}
}
