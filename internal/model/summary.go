package model

import (
	"errors"
	"time"
)

// HealthSummary is the single boundary artifact handed to presentation and
// notification consumers. It is assembled fresh each refresh tick and
// replaced wholesale, never patched in place.
type HealthSummary struct {
	Date          time.Time
	OverallScore  int
	Vitals        VitalSample
	Sleep         SleepRecord
	Activity      ActivityRecord
	Recovery      RecoverySnapshot
	Cycle         *CycleState
	Insights      []Insight
	NutritionPlan NutritionPlan
}

func (s HealthSummary) Validate() error {
	if s.Date.IsZero() {
		return errors.New("model: summary date is required")
	}
	if s.OverallScore < 0 || s.OverallScore > 100 {
		return errors.New("model: overall score out of range")
	}
	if err := s.Vitals.Validate(); err != nil {
		return err
	}
	if err := s.Sleep.Validate(); err != nil {
		return err
	}
	if err := s.Activity.Validate(); err != nil {
		return err
	}
	if err := s.Recovery.Validate(); err != nil {
		return err
	}
	if s.Cycle != nil {
		if err := s.Cycle.Validate(); err != nil {
			return err
		}
	}
	for _, in := range s.Insights {
		if err := in.Validate(); err != nil {
			return err
		}
	}
	return nil
}
