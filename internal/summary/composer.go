package summary

import (
	"math"

	"github.com/sandeepkv93/vitald/internal/insight"
	"github.com/sandeepkv93/vitald/internal/model"
	"github.com/sandeepkv93/vitald/internal/nutrition"
)

// Composer assembles the per-tick HealthSummary. It owns no logic beyond the
// overall-score formula and invoking the insight engine and nutrition
// planner; the result is handed out as an immutable value and replaced
// wholesale on the next tick.
type Composer struct {
	insights *insight.Engine
	planner  *nutrition.Planner
}

func NewComposer() *Composer {
	return &Composer{
		insights: insight.NewEngine(),
		planner:  nutrition.NewPlanner(),
	}
}

func (c *Composer) Compose(vitals model.VitalSample, sleep model.SleepRecord, activity model.ActivityRecord, recovery model.RecoverySnapshot, cycleState *model.CycleState) model.HealthSummary {
	snap := insight.Snapshot{
		Vitals:   vitals,
		Sleep:    sleep,
		Activity: activity,
		Recovery: recovery,
	}

	return model.HealthSummary{
		Date:          recovery.Date,
		OverallScore:  overallScore(sleep, recovery, activity),
		Vitals:        vitals,
		Sleep:         sleep,
		Activity:      activity,
		Recovery:      recovery,
		Cycle:         cycleState,
		Insights:      c.insights.Evaluate(snap, vitals.Timestamp),
		NutritionPlan: c.planner.Plan(activity, recovery),
	}
}

// overallScore averages sleep, recovery and a step component capped at 100
// (one point per hundred steps).
func overallScore(sleep model.SleepRecord, recovery model.RecoverySnapshot, activity model.ActivityRecord) int {
	stepComponent := math.Min(100, float64(activity.Steps)/100.0)
	return int(math.Round((float64(sleep.SleepScore) + float64(recovery.RecoveryScore) + stepComponent) / 3.0))
}
