package views

import (
	"fmt"
	"strings"
)

type DashboardVitalsData struct {
	HeartRate       int
	HRV             float64
	BloodOxygen     float64
	SkinTemperature float64
	StressLevel     int
	MuscleFatigue   string
}

type DashboardPanelData struct {
	Date           string
	OverallScore   int
	ReadinessScore int
	RecoveryScore  int
	Recommendation string
	Vitals         DashboardVitalsData
	Steps          int
	StepsProgress  string
	Calories       int
	SleepScore     int
	DeepSleepHours float64
	SpinnerView    string
	Refreshing     bool
}

type InsightItemData struct {
	ID             string
	Type           string
	Title          string
	Description    string
	Priority       string
	Actionable     bool
	Recommendation string
}

type InsightsPanelData struct {
	ListView   string
	Items      []InsightItemData
	SelectedID string
}

type CoachExchangeData struct {
	Question string
	Reply    string
}

type CoachPanelData struct {
	InputView string
	History   []CoachExchangeData
}

type CyclePanelData struct {
	Tracking           bool
	Day                int
	Phase              string
	TempRise           float64
	Ambiguous          bool
	FertileStart       string
	FertileEnd         string
	EstimatedOvulation string
	NextPeriod         string
	Symptoms           []string
}

type NutritionPanelData struct {
	TargetCalories  int
	ProteinGrams    int
	CarbsGrams      int
	FatsGrams       int
	HydrationLiters float64
	Meals           []MealData
}

type MealData struct {
	Name     string
	Time     string
	Calories int
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("date: %s\n", data.Date))
	if data.Refreshing {
		b.WriteString(fmt.Sprintf("%s refreshing...\n", data.SpinnerView))
	}
	b.WriteString(fmt.Sprintf("overall: %d | readiness: %d | recovery: %d\n", data.OverallScore, data.ReadinessScore, data.RecoveryScore))
	b.WriteString(fmt.Sprintf("recommendation: %s\n", data.Recommendation))
	b.WriteString(fmt.Sprintf("vitals: %d bpm | hrv %.0f ms | spo2 %.1f%% | temp %.1f°C | stress %d\n",
		data.Vitals.HeartRate, data.Vitals.HRV, data.Vitals.BloodOxygen, data.Vitals.SkinTemperature, data.Vitals.StressLevel))
	if data.Vitals.MuscleFatigue != "" {
		b.WriteString(fmt.Sprintf("muscle fatigue: %s\n", data.Vitals.MuscleFatigue))
	}
	b.WriteString(fmt.Sprintf("steps: %d %s | calories: %d\n", data.Steps, data.StepsProgress, data.Calories))
	b.WriteString(fmt.Sprintf("sleep: score %d | deep %.1f h\n", data.SleepScore, data.DeepSleepHours))
	b.WriteString("actions: [1]dashboard [2]insights [3]coach [4]cycle [r]refresh")
	return strings.TrimSpace(b.String())
}

func RenderInsightsPanel(data InsightsPanelData) string {
	var b strings.Builder
	b.WriteString("insights:\n")
	b.WriteString("actions: [j/k]move [enter]detail\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(no insights)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s [%s] %s\n", cursor, priorityBadge(item.Priority), item.Type, item.Title))
		if data.SelectedID == item.ID {
			b.WriteString(fmt.Sprintf("    %s\n", item.Description))
			if item.Actionable && item.Recommendation != "" {
				b.WriteString(fmt.Sprintf("    try: %s\n", item.Recommendation))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderCoachPanel(data CoachPanelData) string {
	var b strings.Builder
	b.WriteString("coach:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("actions: [enter]ask [esc]back\n")
	if len(data.History) == 0 {
		b.WriteString("(ask anything about sleep, training, stress or food)")
		return strings.TrimSpace(b.String())
	}
	for _, ex := range data.History {
		b.WriteString(fmt.Sprintf("\nyou: %s\n", ex.Question))
		b.WriteString(ex.Reply + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCyclePanel(data CyclePanelData) string {
	if !data.Tracking {
		return "cycle:\n(tracking disabled — enable it in settings)"
	}
	var b strings.Builder
	b.WriteString("cycle:\n")
	b.WriteString("actions: [j/k]day log [s]symptom\n")
	b.WriteString(fmt.Sprintf("day %d | phase: %s\n", data.Day, data.Phase))
	if data.TempRise > 0 {
		b.WriteString(fmt.Sprintf("basal temp rise: +%.1f°C\n", data.TempRise))
	}
	if data.Ambiguous {
		b.WriteString("note: temperature reading out of expected range, ignored\n")
	}
	b.WriteString(fmt.Sprintf("fertile window: %s - %s\n", data.FertileStart, data.FertileEnd))
	b.WriteString(fmt.Sprintf("estimated ovulation: %s | next period: %s\n", data.EstimatedOvulation, data.NextPeriod))
	if len(data.Symptoms) > 0 {
		b.WriteString("symptoms:\n")
		for _, s := range data.Symptoms {
			b.WriteString("- " + s + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderNutritionPanel(data NutritionPanelData) string {
	var b strings.Builder
	b.WriteString("nutrition:\n")
	b.WriteString(fmt.Sprintf("target: %d kcal | protein %dg | carbs %dg | fats %dg | water %.1f L\n",
		data.TargetCalories, data.ProteinGrams, data.CarbsGrams, data.FatsGrams, data.HydrationLiters))
	for _, meal := range data.Meals {
		b.WriteString(fmt.Sprintf("- %s %s (%d kcal)\n", meal.Time, meal.Name, meal.Calories))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("help (%s):\n", data.CurrentView))
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func priorityBadge(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return "[RED]"
	case "medium":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}
