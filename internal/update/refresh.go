package update

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/vitald/internal/cycle"
	"github.com/sandeepkv93/vitald/internal/model"
	"github.com/sandeepkv93/vitald/internal/score"
	"github.com/sandeepkv93/vitald/internal/storage"
	"github.com/sandeepkv93/vitald/internal/summary"
)

const retentionDays = 30

// performRefresh runs one full acquisition-to-summary pass and replaces the
// model's summary wholesale. Persistence failures degrade to a status bar
// warning; the in-memory summary always wins.
func (m *Model) performRefresh() error {
	now := m.now().UTC()
	day := now.Truncate(24 * time.Hour)

	vitals, err := m.source.Next()
	if err != nil {
		return fmt.Errorf("read vitals: %w", err)
	}
	sleep := m.source.NextSleep(day)
	activity := m.source.NextActivity(day)
	recoveryScore, muscleRecovery, energyLevel := m.source.NextRecovery()

	var cycleState *model.CycleState
	if m.Profile.CycleModelApplies() {
		basal := m.source.NextBasalTemp(m.CycleLog.BaselineTemp)
		state, cycleErr := m.cycleModel.Compute(m.CycleLog.Day, basal, m.CycleLog.BaselineTemp, now)
		if cycleErr != nil {
			return fmt.Errorf("cycle model: %w", cycleErr)
		}
		state.Symptoms = append([]string(nil), m.CycleLog.Symptoms...)
		cycleState = &state
	}

	inputs := score.DeriveInputs(vitals, sleep, activity)
	recovery := score.BuildSnapshot(day, recoveryScore, muscleRecovery, energyLevel, inputs, cycle.LutealActive(cycleState))

	s := m.composer.Compose(vitals, sleep, activity, recovery, cycleState)
	m.Summary = &s

	if err := m.persistSummary(s); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("persist summary: %v", err), IsError: true}
	}
	m.dispatchNotifications(s)
	return nil
}

func (m *Model) persistSummary(s model.HealthSummary) error {
	if m.repo == nil {
		return nil
	}
	ctx := context.Background()

	sample := storage.VitalSample{
		ID:              "vs-" + s.Vitals.Timestamp.UTC().Format("20060102T150405.000"),
		TakenAt:         s.Vitals.Timestamp,
		HeartRate:       s.Vitals.HeartRate,
		HRV:             s.Vitals.HRV,
		BloodOxygen:     s.Vitals.BloodOxygen,
		SkinTemperature: s.Vitals.SkinTemperature,
		StressLevel:     s.Vitals.StressLevel,
	}
	if s.Vitals.MuscleOxygen != nil {
		v := *s.Vitals.MuscleOxygen
		sample.MuscleOxygen = &v
	}
	if s.Vitals.MuscleFatigue != nil {
		sample.MuscleFatigue = string(*s.Vitals.MuscleFatigue)
	}
	if err := m.repo.CreateVitalSample(ctx, sample); err != nil {
		return fmt.Errorf("vital sample: %w", err)
	}

	dateKey := s.Date.UTC().Format("2006-01-02")
	if err := m.repo.UpsertSleepRecord(ctx, storage.SleepRecord{
		ID:           "sleep-" + dateKey,
		Date:         s.Sleep.Date,
		TotalMinutes: s.Sleep.TotalDuration,
		DeepMinutes:  s.Sleep.DeepSleep,
		LightMinutes: s.Sleep.LightSleep,
		RemMinutes:   s.Sleep.RemSleep,
		AwakeMinutes: s.Sleep.AwakeTime,
		SleepScore:   s.Sleep.SleepScore,
		BedTime:      s.Sleep.BedTime,
		WakeTime:     s.Sleep.WakeTime,
	}); err != nil {
		return fmt.Errorf("sleep record: %w", err)
	}

	if err := m.repo.UpsertActivityRecord(ctx, storage.ActivityRecord{
		ID:             "act-" + dateKey,
		Date:           s.Activity.Date,
		Steps:          s.Activity.Steps,
		DistanceKM:     s.Activity.Distance,
		CaloriesBurned: s.Activity.CaloriesBurned,
		ActiveMinutes:  s.Activity.ActiveMinutes,
		StandingHours:  s.Activity.StandingHours,
		Floors:         s.Activity.Floors,
	}); err != nil {
		return fmt.Errorf("activity record: %w", err)
	}

	if err := m.repo.UpsertRecoverySnapshot(ctx, storage.RecoverySnapshot{
		ID:             "rec-" + dateKey,
		Date:           s.Recovery.Date,
		RecoveryScore:  s.Recovery.RecoveryScore,
		ReadinessScore: s.Recovery.ReadinessScore,
		MuscleRecovery: s.Recovery.MuscleRecovery,
		EnergyLevel:    s.Recovery.EnergyLevel,
		Recommendation: s.Recovery.Recommendation,
		HRVNormalized:  s.Recovery.HRVNormalized,
		SleepQuality:   s.Recovery.SleepQuality,
		DailyStrain:    s.Recovery.DailyStrain,
	}); err != nil {
		return fmt.Errorf("recovery snapshot: %w", err)
	}

	for _, in := range s.Insights {
		if err := m.repo.CreateInsight(ctx, storage.Insight{
			InsightID:      in.ID,
			Type:           string(in.Type),
			Title:          in.Title,
			Description:    in.Description,
			Priority:       string(in.Priority),
			Actionable:     in.Actionable,
			Recommendation: in.Recommendation,
			CreatedAt:      in.Timestamp,
		}); err != nil {
			return fmt.Errorf("insight %s: %w", in.ID, err)
		}
	}
	return nil
}

func (m *Model) dispatchNotifications(s model.HealthSummary) {
	if !m.Settings.Notifications {
		return
	}
	for _, n := range summary.Notifications(s) {
		m.notify(n.Title, n.Body, levelFromPriority(n.Priority))
	}
}

// pruneHistory trims vital samples and insights past the retention window.
// Daily records are tiny and kept forever.
func (m *Model) pruneHistory() (int64, error) {
	if m.repo == nil {
		return 0, nil
	}
	ctx := context.Background()
	cutoff := m.now().UTC().AddDate(0, 0, -retentionDays)
	samples, err := m.repo.DeleteVitalSamplesBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune vital samples: %w", err)
	}
	insights, err := m.repo.DeleteInsightsBefore(ctx, cutoff)
	if err != nil {
		return samples, fmt.Errorf("prune insights: %w", err)
	}
	return samples + insights, nil
}
