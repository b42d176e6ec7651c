package insight

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/vitald/internal/model"
)

// Snapshot is the input the rule table evaluates. Every field is required;
// optional vitals (muscle oxygen) never feed a rule.
type Snapshot struct {
	Vitals   model.VitalSample
	Sleep    model.SleepRecord
	Activity model.ActivityRecord
	Recovery model.RecoverySnapshot
}

// rule is one threshold check. Rules are independent: no rule suppresses
// another, and the output order is the table order.
type rule struct {
	name string
	eval func(Snapshot, time.Time) (model.Insight, bool)
}

const (
	elevatedHRThreshold  = 75
	sleepScoreThreshold  = 80
	stepFloorThreshold   = 8000
	stepGoal             = 10000
	recoveryDayThreshold = 75
	elevatedStressLevel  = 40
)

type Engine struct {
	rules []rule
}

func NewEngine() *Engine {
	return &Engine{rules: []rule{
		{name: "elevated-heart-rate", eval: elevatedHeartRate},
		{name: "low-sleep-score", eval: lowSleepScore},
		{name: "step-goal-gap", eval: stepGoalGap},
		{name: "recovery-day", eval: recoveryDay},
		{name: "elevated-stress", eval: elevatedStress},
	}}
}

// Evaluate runs the rule table in order and appends the unconditional SpO2
// affirmation, so the result is never empty and never purely negative.
// Insights keep the evaluation order; they are never re-sorted by priority.
func (e *Engine) Evaluate(snap Snapshot, now time.Time) []model.Insight {
	out := make([]model.Insight, 0, len(e.rules)+1)
	for _, r := range e.rules {
		if in, fired := r.eval(snap, now); fired {
			out = append(out, in)
		}
	}
	out = append(out, spo2Affirmation(snap, now))
	return out
}

func insightID(ruleName string) string {
	return "insight-" + ruleName
}

func elevatedHeartRate(snap Snapshot, now time.Time) (model.Insight, bool) {
	if snap.Vitals.HeartRate <= elevatedHRThreshold {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:             insightID("elevated-heart-rate"),
		Type:           model.InsightHealth,
		Title:          "Elevated Heart Rate",
		Description:    fmt.Sprintf("Your resting heart rate is %d bpm, above your usual range.", snap.Vitals.HeartRate),
		Priority:       model.InsightPriorityMedium,
		Actionable:     true,
		Recommendation: "Take a few minutes of slow breathing and avoid caffeine this afternoon.",
		Timestamp:      now,
	}, true
}

func lowSleepScore(snap Snapshot, now time.Time) (model.Insight, bool) {
	if snap.Sleep.SleepScore >= sleepScoreThreshold {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:             insightID("low-sleep-score"),
		Type:           model.InsightSleep,
		Title:          "Sleep Quality Dipped",
		Description:    fmt.Sprintf("Last night scored %d with %.1f hours of deep sleep.", snap.Sleep.SleepScore, snap.Sleep.DeepSleepHours()),
		Priority:       model.InsightPriorityMedium,
		Actionable:     true,
		Recommendation: "Move bedtime 30 minutes earlier and keep the room cool tonight.",
		Timestamp:      now,
	}, true
}

func stepGoalGap(snap Snapshot, now time.Time) (model.Insight, bool) {
	if snap.Activity.Steps >= stepFloorThreshold {
		return model.Insight{}, false
	}
	remaining := stepGoal - snap.Activity.Steps
	return model.Insight{
		ID:             insightID("step-goal-gap"),
		Type:           model.InsightActivity,
		Title:          "Step Goal Within Reach",
		Description:    fmt.Sprintf("You are %d steps short of the %d goal.", remaining, stepGoal),
		Priority:       model.InsightPriorityLow,
		Actionable:     true,
		Recommendation: "A brisk 20-minute walk closes most of the gap.",
		Timestamp:      now,
	}, true
}

func recoveryDay(snap Snapshot, now time.Time) (model.Insight, bool) {
	if snap.Recovery.RecoveryScore >= recoveryDayThreshold {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:             insightID("recovery-day"),
		Type:           model.InsightRecovery,
		Title:          "Make Today a Recovery Day",
		Description:    fmt.Sprintf("Recovery is at %d. Your body is asking for an easier day.", snap.Recovery.RecoveryScore),
		Priority:       model.InsightPriorityHigh,
		Actionable:     true,
		Recommendation: "Swap hard training for stretching or a short walk.",
		Timestamp:      now,
	}, true
}

func elevatedStress(snap Snapshot, now time.Time) (model.Insight, bool) {
	if snap.Vitals.StressLevel <= elevatedStressLevel {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:             insightID("elevated-stress"),
		Type:           model.InsightStress,
		Title:          "Stress Running High",
		Description:    fmt.Sprintf("Your stress level is %d out of 100.", snap.Vitals.StressLevel),
		Priority:       model.InsightPriorityMedium,
		Actionable:     true,
		Recommendation: "Try a five-minute breathing exercise before your next block of work.",
		Timestamp:      now,
	}, true
}

func spo2Affirmation(snap Snapshot, now time.Time) model.Insight {
	return model.Insight{
		ID:          insightID("optimal-spo2"),
		Type:        model.InsightHealth,
		Title:       "Blood Oxygen Looks Great",
		Description: fmt.Sprintf("SpO2 is holding at %.1f%%. Keep doing what you're doing.", snap.Vitals.BloodOxygen),
		Priority:    model.InsightPriorityLow,
		Actionable:  false,
		Timestamp:   now,
	}
}
