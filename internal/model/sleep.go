package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrSleepStagesExceedTotal = errors.New("model: sleep stages exceed total duration")

// SleepRecord is one night of sleep. Durations are minutes. The stage
// breakdown (deep + light + rem + awake) can never exceed the total.
type SleepRecord struct {
	Date          time.Time
	TotalDuration int
	DeepSleep     int
	LightSleep    int
	RemSleep      int
	AwakeTime     int
	SleepScore    int // 0-100
	BedTime       time.Time
	WakeTime      time.Time
}

func (s SleepRecord) Validate() error {
	if s.Date.IsZero() {
		return errors.New("model: sleep record date is required")
	}
	if s.TotalDuration < 0 || s.DeepSleep < 0 || s.LightSleep < 0 || s.RemSleep < 0 || s.AwakeTime < 0 {
		return errors.New("model: sleep durations must be non-negative")
	}
	if sum := s.DeepSleep + s.LightSleep + s.RemSleep + s.AwakeTime; sum > s.TotalDuration {
		return fmt.Errorf("%w: %d > %d", ErrSleepStagesExceedTotal, sum, s.TotalDuration)
	}
	if s.SleepScore < 0 || s.SleepScore > 100 {
		return errors.New("model: sleep score out of range")
	}
	return nil
}

// DeepSleepHours reports the deep sleep stage in hours, the unit insights
// surface to the user.
func (s SleepRecord) DeepSleepHours() float64 {
	return float64(s.DeepSleep) / 60.0
}
