package nutrition

import (
	"math"

	"github.com/sandeepkv93/vitald/internal/model"
)

// Calorie and macro constants are fixed for output parity: a 1800 kcal base
// plus half of active burn, split 25/45/30 across protein/carbs/fats at
// 4/4/9 kcal per gram.
const (
	baseCalories   = 1800
	activityFactor = 0.5

	proteinShare = 0.25
	carbsShare   = 0.45
	fatsShare    = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFats    = 9

	baseHydrationLiters = 2.0
)

// mealSlot is one entry of the fixed four-meal template. Shares sum to 1.
type mealSlot struct {
	name        string
	time        string
	share       float64
	description string
}

var mealSchedule = []mealSlot{
	{name: "Breakfast", time: "08:00", share: 0.25, description: "Oats with berries, greek yogurt and a handful of nuts."},
	{name: "Lunch", time: "12:30", share: 0.35, description: "Grilled chicken, quinoa and roasted vegetables."},
	{name: "Snack", time: "16:00", share: 0.10, description: "Apple slices with almond butter."},
	{name: "Dinner", time: "19:00", share: 0.30, description: "Baked salmon, sweet potato and steamed greens."},
}

type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Plan derives the day's targets from activity expenditure. The recovery
// snapshot is part of the contract as an extension point but does not drive
// the current formula. Macro grams are rounded independently of each other,
// so small drift against the calorie total is expected.
func (p *Planner) Plan(activity model.ActivityRecord, recovery model.RecoverySnapshot) model.NutritionPlan {
	_ = recovery

	calories := int(math.Round(baseCalories + float64(activity.CaloriesBurned)*activityFactor))

	meals := make([]model.Meal, 0, len(mealSchedule))
	for _, slot := range mealSchedule {
		meals = append(meals, model.Meal{
			Name:        slot.name,
			Time:        slot.time,
			Calories:    int(math.Round(float64(calories) * slot.share)),
			Description: slot.description,
		})
	}

	return model.NutritionPlan{
		Calories:  calories,
		Protein:   int(math.Round(float64(calories) * proteinShare / kcalPerGramProtein)),
		Carbs:     int(math.Round(float64(calories) * carbsShare / kcalPerGramCarbs)),
		Fats:      int(math.Round(float64(calories) * fatsShare / kcalPerGramFats)),
		Hydration: hydrationFor(activity.CaloriesBurned),
		Meals:     meals,
	}
}

// hydrationFor adds a liter per thousand active calories on top of the base,
// reported to one decimal.
func hydrationFor(caloriesBurned int) float64 {
	liters := baseHydrationLiters + float64(caloriesBurned)/1000.0
	return math.Round(liters*10) / 10
}
