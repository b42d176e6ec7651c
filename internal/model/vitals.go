package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMuscleFatigue = errors.New("model: invalid muscle fatigue level")
	ErrInvalidStressLevel   = errors.New("model: stress level out of range")
)

type MuscleFatigue string

const (
	MuscleFatigueLow    MuscleFatigue = "Low"
	MuscleFatigueMedium MuscleFatigue = "Medium"
	MuscleFatigueHigh   MuscleFatigue = "High"
)

func (f MuscleFatigue) IsValid() bool {
	switch f {
	case MuscleFatigueLow, MuscleFatigueMedium, MuscleFatigueHigh:
		return true
	default:
		return false
	}
}

// DeriveMuscleFatigue maps a muscle oxygenation percentage onto a fatigue
// level. Higher SmO2 means fresher muscle tissue.
func DeriveMuscleFatigue(muscleOxygen float64) MuscleFatigue {
	switch {
	case muscleOxygen >= 60:
		return MuscleFatigueLow
	case muscleOxygen >= 45:
		return MuscleFatigueMedium
	default:
		return MuscleFatigueHigh
	}
}

// VitalSample is one acquisition tick of wearable telemetry. Samples are
// immutable once produced; muscle oxygen and the fatigue level derived from
// it are optional and nil when the sensor is absent.
type VitalSample struct {
	Timestamp       time.Time
	HeartRate       int     // bpm
	HRV             float64 // ms, RMSSD
	BloodOxygen     float64 // percent
	SkinTemperature float64 // celsius
	StressLevel     int     // 0-100
	MuscleOxygen    *float64
	MuscleFatigue   *MuscleFatigue
}

func (v VitalSample) Validate() error {
	if v.Timestamp.IsZero() {
		return errors.New("model: vital sample timestamp is required")
	}
	if v.HeartRate <= 0 {
		return errors.New("model: vital sample heart rate must be positive")
	}
	if v.HRV < 0 {
		return errors.New("model: vital sample hrv must be non-negative")
	}
	if v.BloodOxygen < 0 || v.BloodOxygen > 100 {
		return errors.New("model: vital sample blood oxygen out of range")
	}
	if v.StressLevel < 0 || v.StressLevel > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidStressLevel, v.StressLevel)
	}
	if v.MuscleFatigue != nil && !v.MuscleFatigue.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMuscleFatigue, *v.MuscleFatigue)
	}
	if v.MuscleFatigue != nil && v.MuscleOxygen == nil {
		return errors.New("model: muscle fatigue requires muscle oxygen")
	}
	return nil
}
