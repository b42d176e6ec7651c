package telemetry

import (
	"errors"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

var ErrSourceExhausted = errors.New("telemetry: source exhausted")

// Source supplies one acquisition tick of wearable telemetry: the vital
// sample plus the daily sleep/activity/recovery/basal-temperature readings
// derived alongside it. Implementations range from a real wearable bridge to
// the seeded simulator and fixed test fixtures; the refresh pipeline never
// knows which one it is talking to.
type Source interface {
	Next() (model.VitalSample, error)
	NextSleep(date time.Time) model.SleepRecord
	NextActivity(date time.Time) model.ActivityRecord
	NextRecovery() (recoveryScore, muscleRecovery, energyLevel int)
	NextBasalTemp(baseline float64) float64
}

var (
	_ Source = (*SimulatedSource)(nil)
	_ Source = (*FixtureSource)(nil)
)

// FixtureSource replays a fixed sample sequence and then reports
// ErrSourceExhausted, while the daily-record calls return the fixed values
// set on the struct. It backs deterministic tests and demos.
type FixtureSource struct {
	samples []model.VitalSample
	cursor  int

	Sleep          model.SleepRecord
	Activity       model.ActivityRecord
	RecoveryScore  int
	MuscleRecovery int
	EnergyLevel    int
	TempRise       float64
}

func NewFixtureSource(samples []model.VitalSample) *FixtureSource {
	return &FixtureSource{samples: samples}
}

func (f *FixtureSource) Next() (model.VitalSample, error) {
	if f.cursor >= len(f.samples) {
		return model.VitalSample{}, ErrSourceExhausted
	}
	out := f.samples[f.cursor]
	f.cursor++
	return out, nil
}

func (f *FixtureSource) NextSleep(date time.Time) model.SleepRecord {
	out := f.Sleep
	out.Date = date
	return out
}

func (f *FixtureSource) NextActivity(date time.Time) model.ActivityRecord {
	out := f.Activity
	out.Date = date
	return out
}

func (f *FixtureSource) NextRecovery() (recoveryScore, muscleRecovery, energyLevel int) {
	return f.RecoveryScore, f.MuscleRecovery, f.EnergyLevel
}

func (f *FixtureSource) NextBasalTemp(baseline float64) float64 {
	return baseline + f.TempRise
}
