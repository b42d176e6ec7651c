package model

import (
	"errors"
	"strings"
)

// Meal is one slot of the fixed daily schedule.
type Meal struct {
	Name        string
	Time        string // HH:MM
	Calories    int
	Description string
}

// NutritionPlan carries the day's calorie and macro targets plus the meal
// allocation. Macro grams are rounded independently, so they do not
// reconstruct the calorie total exactly.
type NutritionPlan struct {
	Calories  int
	Protein   int     // grams
	Carbs     int     // grams
	Fats      int     // grams
	Hydration float64 // liters
	Meals     []Meal
}

func (p NutritionPlan) Validate() error {
	if p.Calories <= 0 {
		return errors.New("model: nutrition plan calories must be positive")
	}
	if p.Protein < 0 || p.Carbs < 0 || p.Fats < 0 {
		return errors.New("model: macro grams must be non-negative")
	}
	if p.Hydration < 0 {
		return errors.New("model: hydration must be non-negative")
	}
	for _, m := range p.Meals {
		if strings.TrimSpace(m.Name) == "" {
			return errors.New("model: meal name is required")
		}
		if m.Calories < 0 {
			return errors.New("model: meal calories must be non-negative")
		}
	}
	return nil
}

// MealCalorieSum totals the per-meal allocations. Callers tolerate a couple
// of calories of rounding drift against Calories.
func (p NutritionPlan) MealCalorieSum() int {
	sum := 0
	for _, m := range p.Meals {
		sum += m.Calories
	}
	return sum
}
