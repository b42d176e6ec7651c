package model

import (
	"errors"
	"time"
)

// RecoverySnapshot is the readiness state for one day. RecoveryScore,
// MuscleRecovery and EnergyLevel arrive from upstream derivations; only
// ReadinessScore is computed here, from the three normalized inputs carried
// alongside it.
type RecoverySnapshot struct {
	Date           time.Time
	RecoveryScore  int // 0-100
	ReadinessScore int // 0-100
	MuscleRecovery int // 0-100
	EnergyLevel    int // 0-100
	Recommendation string
	HRVNormalized  float64 // [0,1]
	SleepQuality   float64 // [0,1]
	DailyStrain    float64 // [0,1]
}

func (r RecoverySnapshot) Validate() error {
	if r.Date.IsZero() {
		return errors.New("model: recovery snapshot date is required")
	}
	if r.RecoveryScore < 0 || r.RecoveryScore > 100 {
		return errors.New("model: recovery score out of range")
	}
	if r.ReadinessScore < 0 || r.ReadinessScore > 100 {
		return errors.New("model: readiness score out of range")
	}
	if r.MuscleRecovery < 0 || r.MuscleRecovery > 100 {
		return errors.New("model: muscle recovery out of range")
	}
	if r.EnergyLevel < 0 || r.EnergyLevel > 100 {
		return errors.New("model: energy level out of range")
	}
	return nil
}
