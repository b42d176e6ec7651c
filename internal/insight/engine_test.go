package insight

import (
	"testing"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

var evalTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func snapshotWith(hr, sleepScore, steps, recoveryScore, stress int) Snapshot {
	return Snapshot{
		Vitals: model.VitalSample{
			Timestamp:       evalTime,
			HeartRate:       hr,
			HRV:             55,
			BloodOxygen:     97.5,
			SkinTemperature: 36.5,
			StressLevel:     stress,
		},
		Sleep: model.SleepRecord{
			Date:          evalTime,
			TotalDuration: 420,
			DeepSleep:     90,
			LightSleep:    210,
			RemSleep:      80,
			AwakeTime:     40,
			SleepScore:    sleepScore,
		},
		Activity: model.ActivityRecord{
			Date:           evalTime,
			Steps:          steps,
			CaloriesBurned: 300,
		},
		Recovery: model.RecoverySnapshot{
			Date:          evalTime,
			RecoveryScore: recoveryScore,
		},
	}
}

func TestEvaluateQuietSnapshotOnlyFallback(t *testing.T) {
	engine := NewEngine()
	got := engine.Evaluate(snapshotWith(80, 90, 9000, 85, 20), evalTime)
	if len(got) != 2 {
		t.Fatalf("hr=80 fires the heart-rate rule plus fallback, expected 2, got %d: %#v", len(got), got)
	}

	got = engine.Evaluate(snapshotWith(70, 90, 9000, 85, 20), evalTime)
	if len(got) != 1 {
		t.Fatalf("quiet snapshot must yield fallback only, got %d: %#v", len(got), got)
	}
	fallback := got[0]
	if fallback.Type != model.InsightHealth || fallback.Actionable {
		t.Fatalf("fallback must be a non-actionable health insight: %#v", fallback)
	}
	if fallback.ID != "insight-optimal-spo2" {
		t.Fatalf("unexpected fallback id: %q", fallback.ID)
	}
}

func TestEvaluateAllRulesFireInOrder(t *testing.T) {
	engine := NewEngine()
	got := engine.Evaluate(snapshotWith(80, 60, 3000, 60, 50), evalTime)
	if len(got) != 6 {
		t.Fatalf("expected 6 insights (5 rules + fallback), got %d", len(got))
	}
	wantIDs := []string{
		"insight-elevated-heart-rate",
		"insight-low-sleep-score",
		"insight-step-goal-gap",
		"insight-recovery-day",
		"insight-elevated-stress",
		"insight-optimal-spo2",
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].ID)
		}
	}
	if got[3].Priority != model.InsightPriorityHigh {
		t.Fatalf("recovery-day must be high priority, got %q", got[3].Priority)
	}
}

func TestEvaluateNeverEmpty(t *testing.T) {
	engine := NewEngine()
	got := engine.Evaluate(snapshotWith(60, 95, 12000, 95, 5), evalTime)
	if len(got) == 0 {
		t.Fatal("evaluate must never return an empty list")
	}
	foundAffirmation := false
	for _, in := range got {
		if in.Type == model.InsightHealth && !in.Actionable {
			foundAffirmation = true
		}
	}
	if !foundAffirmation {
		t.Fatal("output must contain the non-actionable health affirmation")
	}
}

func TestEvaluateStableIDsAcrossTicks(t *testing.T) {
	engine := NewEngine()
	first := engine.Evaluate(snapshotWith(80, 60, 3000, 60, 50), evalTime)
	second := engine.Evaluate(snapshotWith(80, 60, 3000, 60, 50), evalTime.Add(time.Hour))
	if len(first) != len(second) {
		t.Fatalf("same snapshot must fire the same rules: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("position %d: ids differ across ticks: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestEvaluateStepRuleReportsRemaining(t *testing.T) {
	engine := NewEngine()
	got := engine.Evaluate(snapshotWith(70, 90, 7500, 85, 20), evalTime)
	if len(got) != 2 {
		t.Fatalf("expected step rule plus fallback, got %d", len(got))
	}
	if got[0].ID != "insight-step-goal-gap" {
		t.Fatalf("expected step rule first, got %q", got[0].ID)
	}
	if got[0].Description != "You are 2500 steps short of the 10000 goal." {
		t.Fatalf("unexpected step description: %q", got[0].Description)
	}
	if err := got[0].Validate(); err != nil {
		t.Fatalf("insight must validate: %v", err)
	}
}
