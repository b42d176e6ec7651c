package coach

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/vitald/internal/model"
)

// readinessPrimed is the binary framing threshold the workout branch and
// the fallback reply share.
const readinessPrimed = 70

// handler is one entry of the ordered dispatch table: a keyword matcher and
// a template over the current summary. Evaluation is first-match-wins, so
// the table order is part of the contract.
type handler struct {
	keywords []string
	reply    func(model.HealthSummary) string
}

type Responder struct {
	handlers []handler
	fallback func(model.HealthSummary) string
}

func NewResponder() *Responder {
	return &Responder{
		handlers: []handler{
			{keywords: []string{"tired", "exhausted"}, reply: tiredReply},
			{keywords: []string{"workout", "exercise"}, reply: workoutReply},
			{keywords: []string{"sleep", "rest"}, reply: sleepReply},
			{keywords: []string{"stress", "anxious", "calm"}, reply: stressReply},
			{keywords: []string{"eat", "food", "hungry"}, reply: nutritionReply},
		},
		fallback: fallbackReply,
	}
}

// Respond maps a free-text message onto the first handler whose keyword
// appears in it, case-insensitively. No keyword match is not an error; the
// fallback summarizes HRV and readiness instead.
func (r *Responder) Respond(message string, summary model.HealthSummary) string {
	lowered := strings.ToLower(message)
	for _, h := range r.handlers {
		for _, kw := range h.keywords {
			if strings.Contains(lowered, kw) {
				return h.reply(summary)
			}
		}
	}
	return r.fallback(summary)
}

func tiredReply(s model.HealthSummary) string {
	return fmt.Sprintf(
		"Feeling drained makes sense today: your recovery sits at %d and readiness at %d. Treat this as a signal, not a failure. Keep effort light, get sunlight early, and aim for bed before %s.",
		s.Recovery.RecoveryScore, s.Recovery.ReadinessScore, "22:30")
}

func workoutReply(s model.HealthSummary) string {
	if s.Recovery.ReadinessScore > readinessPrimed {
		return fmt.Sprintf(
			"Green light. Readiness is %d, so your body can absorb a demanding session. Push the main sets hard and leave two reps in reserve on the last one.",
			s.Recovery.ReadinessScore)
	}
	return fmt.Sprintf(
		"Hold back today. Readiness is %d, below the level where hard training pays off. Technique work or an easy zone-2 session will do more for you than grinding.",
		s.Recovery.ReadinessScore)
}

func sleepReply(s model.HealthSummary) string {
	return fmt.Sprintf(
		"Last night you logged %d minutes with a sleep score of %d and %.1f hours of deep sleep. Protect tonight: same bedtime, screens off 45 minutes before, room on the cool side.",
		s.Sleep.TotalDuration, s.Sleep.SleepScore, s.Sleep.DeepSleepHours())
}

func stressReply(s model.HealthSummary) string {
	return fmt.Sprintf(
		"Your stress reading is %d and HRV is %.0f ms right now. Two rounds of 4-7-8 breathing will move both within minutes. A ten-minute walk without your phone works too.",
		s.Vitals.StressLevel, s.Vitals.HRV)
}

func nutritionReply(s model.HealthSummary) string {
	return fmt.Sprintf(
		"Today's target is %d kcal: %dg protein, %dg carbs, %dg fat, plus %.1f liters of water. Your next scheduled meal is %s at %s.",
		s.NutritionPlan.Calories, s.NutritionPlan.Protein, s.NutritionPlan.Carbs, s.NutritionPlan.Fats,
		s.NutritionPlan.Hydration, nextMealName(s.NutritionPlan), nextMealTime(s.NutritionPlan))
}

func fallbackReply(s model.HealthSummary) string {
	if s.Recovery.ReadinessScore > readinessPrimed {
		return fmt.Sprintf(
			"Here's where you stand: HRV %.0f ms, readiness %d. Your system is primed for output today.",
			s.Vitals.HRV, s.Recovery.ReadinessScore)
	}
	return fmt.Sprintf(
		"Here's where you stand: HRV %.0f ms, readiness %d. Your system needs gentler input today.",
		s.Vitals.HRV, s.Recovery.ReadinessScore)
}

func nextMealName(p model.NutritionPlan) string {
	if len(p.Meals) == 0 {
		return "your next meal"
	}
	return p.Meals[0].Name
}

func nextMealTime(p model.NutritionPlan) string {
	if len(p.Meals) == 0 {
		return "its usual time"
	}
	return p.Meals[0].Time
}
