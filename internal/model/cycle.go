package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPhase    = errors.New("model: invalid cycle phase")
	ErrInvalidCycleDay = errors.New("model: cycle day must be at least 1")
)

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
)

func (p CyclePhase) IsValid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal:
		return true
	default:
		return false
	}
}

// CycleState is the daily menstrual cycle model for users who opted in to
// cycle tracking. The external day tracker advances CycleDay; the cycle
// package recomputes everything else. AmbiguousTempReading is set when a
// basal temperature rise fell outside the accepted ovulation band and was
// treated as non-significant.
type CycleState struct {
	CycleDay             int
	Phase                CyclePhase
	EstimatedOvulation   *time.Time
	NextPeriod           *time.Time
	Symptoms             []string
	FertileWindow        bool
	BasalBodyTemp        float64
	TempRiseFromBaseline float64
	AmbiguousTempReading bool
}

func (c CycleState) Validate() error {
	if c.CycleDay < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCycleDay, c.CycleDay)
	}
	if !c.Phase.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPhase, c.Phase)
	}
	return nil
}
