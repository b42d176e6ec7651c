package model

import (
	"errors"
	"time"
)

// ActivityRecord is one day of movement totals. All counters are
// non-negative.
type ActivityRecord struct {
	Date           time.Time
	Steps          int
	Distance       float64 // km
	CaloriesBurned int
	ActiveMinutes  int
	StandingHours  int
	Floors         int
}

func (a ActivityRecord) Validate() error {
	if a.Date.IsZero() {
		return errors.New("model: activity record date is required")
	}
	if a.Steps < 0 || a.CaloriesBurned < 0 || a.ActiveMinutes < 0 || a.StandingHours < 0 || a.Floors < 0 {
		return errors.New("model: activity counters must be non-negative")
	}
	if a.Distance < 0 {
		return errors.New("model: activity distance must be non-negative")
	}
	return nil
}
