package update

import (
	"strings"

	"github.com/sandeepkv93/vitald/internal/views"
)

func (m Model) renderDashboardView() string {
	if m.Summary == nil {
		return "dashboard:\n(no data yet — press r to refresh)"
	}
	s := m.Summary
	fatigue := ""
	if s.Vitals.MuscleFatigue != nil {
		fatigue = string(*s.Vitals.MuscleFatigue)
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Date:           s.Date.Format("2006-01-02"),
		OverallScore:   s.OverallScore,
		ReadinessScore: s.Recovery.ReadinessScore,
		RecoveryScore:  s.Recovery.RecoveryScore,
		Recommendation: s.Recovery.Recommendation,
		Vitals: views.DashboardVitalsData{
			HeartRate:       s.Vitals.HeartRate,
			HRV:             s.Vitals.HRV,
			BloodOxygen:     s.Vitals.BloodOxygen,
			SkinTemperature: s.Vitals.SkinTemperature,
			StressLevel:     s.Vitals.StressLevel,
			MuscleFatigue:   fatigue,
		},
		Steps:          s.Activity.Steps,
		StepsProgress:  progressBar(float64(s.Activity.Steps)/float64(stepGoal), 20),
		Calories:       s.Activity.CaloriesBurned,
		SleepScore:     s.Sleep.SleepScore,
		DeepSleepHours: s.Sleep.DeepSleepHours(),
		SpinnerView:    m.refreshSpinner.View(),
		Refreshing:     m.spinnerActive,
	})
}

func (m Model) renderInsightsView() string {
	data := views.InsightsPanelData{ListView: m.insightList.View()}
	if m.Summary != nil {
		for _, in := range m.Summary.Insights {
			data.Items = append(data.Items, views.InsightItemData{
				ID:             in.ID,
				Type:           string(in.Type),
				Title:          in.Title,
				Description:    in.Description,
				Priority:       string(in.Priority),
				Actionable:     in.Actionable,
				Recommendation: in.Recommendation,
			})
		}
	}
	if selected, ok := m.currentInsight(); ok {
		data.SelectedID = selected.ID
	}
	return views.RenderInsightsPanel(data)
}

func (m Model) renderCoachView() string {
	history := make([]views.CoachExchangeData, 0, len(m.Coach.History))
	for _, ex := range m.Coach.History {
		history = append(history, views.CoachExchangeData{
			Question: ex.Question,
			Reply:    ex.Reply,
		})
	}
	return views.RenderCoachPanel(views.CoachPanelData{
		InputView: m.askInput.View(),
		History:   history,
	})
}

func (m Model) renderCycleView() string {
	if !m.Profile.CycleModelApplies() {
		return views.RenderCyclePanel(views.CyclePanelData{Tracking: false})
	}
	data := views.CyclePanelData{
		Tracking: true,
		Day:      m.CycleLog.Day,
		Symptoms: m.CycleLog.Symptoms,
	}
	if m.Summary != nil && m.Summary.Cycle != nil {
		c := m.Summary.Cycle
		data.Phase = string(c.Phase)
		data.TempRise = c.TempRiseFromBaseline
		data.Ambiguous = c.AmbiguousTempReading
		if c.EstimatedOvulation != nil {
			data.EstimatedOvulation = c.EstimatedOvulation.Format("2006-01-02")
			data.FertileStart = c.EstimatedOvulation.AddDate(0, 0, -2).Format("2006-01-02")
			data.FertileEnd = c.EstimatedOvulation.AddDate(0, 0, 2).Format("2006-01-02")
		}
		if c.NextPeriod != nil {
			data.NextPeriod = c.NextPeriod.Format("2006-01-02")
		}
	}
	return views.RenderCyclePanel(data)
}

func (m Model) renderNutritionView() string {
	if m.Summary == nil {
		return ""
	}
	p := m.Summary.NutritionPlan
	meals := make([]views.MealData, 0, len(p.Meals))
	for _, meal := range p.Meals {
		meals = append(meals, views.MealData{Name: meal.Name, Time: meal.Time, Calories: meal.Calories})
	}
	return views.RenderNutritionPanel(views.NutritionPanelData{
		TargetCalories:  p.Calories,
		ProteinGrams:    p.Protein,
		CarbsGrams:      p.Carbs,
		FatsGrams:       p.Fats,
		HydrationLiters: p.Hydration,
		Meals:           meals,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
