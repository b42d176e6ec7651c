package score

import (
	"math"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

// Readiness weights and the luteal dampening factor are fixed; downstream
// consumers depend on output parity, so they are not runtime-configurable.
const (
	hrvWeight    = 0.4
	sleepWeight  = 0.4
	strainWeight = 0.2

	lutealDampening = 0.85
)

// Readiness computes the composite 0-100 readiness score. Inputs are
// expected pre-clamped to [0,1] by their producers; the formula does not
// re-validate and propagates garbage-in as garbage-out.
func Readiness(hrvNorm, sleepQuality, dailyStrain float64, lutealActive bool) int {
	raw := (hrvNorm*hrvWeight + sleepQuality*sleepWeight - dailyStrain*strainWeight) * 100
	if lutealActive {
		raw *= lutealDampening
	}
	return clampScore(int(math.Round(raw)))
}

// Inputs are the normalized readiness drivers.
type Inputs struct {
	HRVNormalized float64
	SleepQuality  float64
	DailyStrain   float64
}

// Reference scales for normalizing raw telemetry into [0,1]. An RMSSD of
// 100ms or above counts as fully recovered autonomic tone; strain saturates
// at 1000 active calories.
const (
	hrvFullScale    = 100.0
	strainFullScale = 1000.0
)

// DeriveInputs normalizes raw records into readiness inputs, clamping each
// to [0,1]. This is the pre-clamp step Readiness relies on.
func DeriveInputs(vitals model.VitalSample, sleep model.SleepRecord, activity model.ActivityRecord) Inputs {
	return Inputs{
		HRVNormalized: clampUnit(vitals.HRV / hrvFullScale),
		SleepQuality:  clampUnit(float64(sleep.SleepScore) / 100.0),
		DailyStrain:   clampUnit(float64(activity.CaloriesBurned) / strainFullScale),
	}
}

// BuildSnapshot assembles a RecoverySnapshot around the readiness formula.
// RecoveryScore, MuscleRecovery and EnergyLevel come from upstream
// derivations and are clamped, not recomputed.
func BuildSnapshot(date time.Time, recoveryScore, muscleRecovery, energyLevel int, in Inputs, lutealActive bool) model.RecoverySnapshot {
	readiness := Readiness(in.HRVNormalized, in.SleepQuality, in.DailyStrain, lutealActive)
	return model.RecoverySnapshot{
		Date:           date,
		RecoveryScore:  clampScore(recoveryScore),
		ReadinessScore: readiness,
		MuscleRecovery: clampScore(muscleRecovery),
		EnergyLevel:    clampScore(energyLevel),
		Recommendation: recommendationFor(readiness),
		HRVNormalized:  in.HRVNormalized,
		SleepQuality:   in.SleepQuality,
		DailyStrain:    in.DailyStrain,
	}
}

func recommendationFor(readiness int) string {
	switch {
	case readiness >= 80:
		return "Fully charged. Take on your hardest session today."
	case readiness >= 60:
		return "Good to train. Keep intensity moderate and watch your strain."
	case readiness >= 40:
		return "Partially recovered. Favor light movement over hard efforts."
	default:
		return "Run down. Prioritize rest, hydration and an early night."
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
