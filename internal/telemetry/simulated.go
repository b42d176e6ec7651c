package telemetry

import (
	"math/rand"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

// SimulatedSource generates plausible wearable telemetry around healthy
// baselines. It exists so the app runs without hardware; a fixed seed makes
// the stream reproducible.
type SimulatedSource struct {
	rng *rand.Rand
	now func() time.Time
}

func NewSimulatedSource(seed int64) *SimulatedSource {
	return &SimulatedSource{
		rng: rand.New(rand.NewSource(seed)),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NewSimulatedSourceAt pins the clock, for tests that need stable
// timestamps alongside a stable seed.
func NewSimulatedSourceAt(seed int64, now func() time.Time) *SimulatedSource {
	src := NewSimulatedSource(seed)
	if now != nil {
		src.now = now
	}
	return src
}

func (s *SimulatedSource) Next() (model.VitalSample, error) {
	smo2 := 45 + s.rng.Float64()*35 // 45-80%
	fatigue := model.DeriveMuscleFatigue(smo2)
	sample := model.VitalSample{
		Timestamp:       s.now(),
		HeartRate:       58 + s.rng.Intn(30),        // 58-87 bpm
		HRV:             30 + s.rng.Float64()*60,    // 30-90 ms
		BloodOxygen:     95 + s.rng.Float64()*4.5,   // 95-99.5%
		SkinTemperature: 36.0 + s.rng.Float64()*1.2, // 36.0-37.2 C
		StressLevel:     s.rng.Intn(71),             // 0-70
		MuscleOxygen:    &smo2,
		MuscleFatigue:   &fatigue,
	}
	return sample, nil
}

// NextSleep fabricates last night's record consistent with the simulator's
// baselines. Stage minutes always respect the total-duration invariant.
func (s *SimulatedSource) NextSleep(date time.Time) model.SleepRecord {
	total := 360 + s.rng.Intn(150) // 6h to 8.5h
	deep := total / 5
	rem := total / 5
	awake := 15 + s.rng.Intn(30)
	light := total - deep - rem - awake
	bed := time.Date(date.Year(), date.Month(), date.Day(), 23, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return model.SleepRecord{
		Date:          date,
		TotalDuration: total,
		DeepSleep:     deep,
		LightSleep:    light,
		RemSleep:      rem,
		AwakeTime:     awake,
		SleepScore:    55 + s.rng.Intn(45),
		BedTime:       bed,
		WakeTime:      bed.Add(time.Duration(total) * time.Minute),
	}
}

// NextActivity fabricates today's movement totals so far.
func (s *SimulatedSource) NextActivity(date time.Time) model.ActivityRecord {
	steps := 2000 + s.rng.Intn(11000)
	return model.ActivityRecord{
		Date:           date,
		Steps:          steps,
		Distance:       float64(steps) * 0.00075,
		CaloriesBurned: 150 + s.rng.Intn(550),
		ActiveMinutes:  20 + s.rng.Intn(80),
		StandingHours:  4 + s.rng.Intn(9),
		Floors:         s.rng.Intn(20),
	}
}

// NextRecovery fabricates the upstream recovery derivations that are inputs
// to the readiness formula, not outputs of it.
func (s *SimulatedSource) NextRecovery() (recoveryScore, muscleRecovery, energyLevel int) {
	return 50 + s.rng.Intn(50), 50 + s.rng.Intn(50), 40 + s.rng.Intn(60)
}

// NextBasalTemp fabricates a basal body temperature reading around the
// given baseline, occasionally with a post-ovulation style rise.
func (s *SimulatedSource) NextBasalTemp(baseline float64) float64 {
	if s.rng.Intn(3) == 0 {
		return baseline + 0.3 + s.rng.Float64()*0.2
	}
	return baseline + (s.rng.Float64()-0.5)*0.2
}
