package update

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vitald/internal/model"
	"github.com/sandeepkv93/vitald/internal/scheduler"
	"github.com/sandeepkv93/vitald/internal/telemetry"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC) }
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentView != ViewDashboard {
		t.Fatalf("expected default view %q, got %q", ViewDashboard, m.CurrentView)
	}
	if !m.Profile.CycleModelApplies() {
		t.Fatalf("expected cycle model active by default, got %+v", m.Profile)
	}
	if m.CycleLog.Day != 1 {
		t.Fatalf("expected cycle day 1, got %d", m.CycleLog.Day)
	}
	if m.Keys.Quit != "q" || m.Keys.Refresh != "r" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if m.Summary != nil {
		t.Fatal("expected no summary before first refresh")
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next := updated.(Model)
	if next.CurrentView != ViewInsights {
		t.Fatalf("expected insights view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	next = updated.(Model)
	if next.CurrentView != ViewCycle {
		t.Fatalf("expected cycle view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SwitchViewMsg{View: ViewCoach})
	next := updated.(Model)
	if next.CurrentView != ViewCoach {
		t.Fatalf("expected coach view, got %q", next.CurrentView)
	}
	if !next.Coach.CaptureMode {
		t.Fatal("expected coach capture mode on switch")
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewCoach {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errMsg := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errMsg})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := NewModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestRefreshKeyPopulatesSummary(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	next := updated.(Model)
	if next.Summary == nil {
		t.Fatal("expected summary after refresh")
	}
	if err := next.Summary.Validate(); err != nil {
		t.Fatalf("summary failed validation: %v", err)
	}
	if next.Summary.Date.Format("2006-01-02") != "2026-03-14" {
		t.Fatalf("unexpected summary date: %v", next.Summary.Date)
	}
	if next.Summary.Cycle == nil {
		t.Fatal("expected cycle state for tracking profile")
	}
	if next.Summary.Cycle.CycleDay != 1 {
		t.Fatalf("expected cycle day 1, got %d", next.Summary.Cycle.CycleDay)
	}
	if next.Status.Text != "health data refreshed" || next.Status.IsError {
		t.Fatalf("unexpected status after refresh: %+v", next.Status)
	}
	if cmd == nil {
		t.Fatal("expected spinner tick command after refresh")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()
	if err := m.performRefresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "view: Dashboard") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "2026-03-14") {
		t.Fatalf("expected summary date in header: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "nutrition:") {
		t.Fatalf("expected nutrition pane on dashboard: %q", out)
	}
}

func TestCoachAskFlowWithKeyboard(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	next := updated.(Model)
	if next.CurrentView != ViewCoach || !next.Coach.CaptureMode {
		t.Fatalf("expected coach capture mode, got %+v", next.Coach)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("can I train hard today")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if len(next.Coach.History) != 1 {
		t.Fatalf("expected 1 coach exchange, got %d", len(next.Coach.History))
	}
	if next.Coach.History[0].Question != "can I train hard today" {
		t.Fatalf("unexpected question: %q", next.Coach.History[0].Question)
	}
	if strings.TrimSpace(next.Coach.History[0].Reply) == "" {
		t.Fatal("expected non-empty coach reply")
	}
	if next.Summary == nil {
		t.Fatal("expected lazy refresh before answering")
	}
	if next.Coach.Input != "" {
		t.Fatalf("expected cleared input after ask, got %q", next.Coach.Input)
	}
}

func TestCycleDayKeysAdvanceAndWrap(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()
	m.CurrentView = ViewCycle

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	next := updated.(Model)
	if next.CycleLog.Day != 2 {
		t.Fatalf("expected cycle day 2, got %d", next.CycleLog.Day)
	}
	if next.Summary == nil || next.Summary.Cycle == nil || next.Summary.Cycle.CycleDay != 2 {
		t.Fatalf("expected recomputed cycle state for day 2, got %+v", next.Summary)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	next = updated.(Model)
	if next.CycleLog.Day != 1 {
		t.Fatalf("expected cycle day back to 1, got %d", next.CycleLog.Day)
	}

	// day 1 minus one clamps, it never goes below the start of the cycle
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	next = updated.(Model)
	if next.CycleLog.Day != 1 {
		t.Fatalf("expected clamped cycle day 1, got %d", next.CycleLog.Day)
	}

	next.CycleLog.Day = next.cycleModel.CycleLength()
	next.CycleLog.Symptoms = []string{"cramps"}
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	next = updated.(Model)
	if next.CycleLog.Day != 1 {
		t.Fatalf("expected wrap to day 1 past cycle end, got %d", next.CycleLog.Day)
	}
	if len(next.CycleLog.Symptoms) != 0 {
		t.Fatalf("expected symptoms cleared on new cycle, got %#v", next.CycleLog.Symptoms)
	}
}

func TestLogSymptomUpdatesSummaryState(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()
	if err := m.performRefresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	before := m.Summary

	updated, _ := m.Update(LogSymptomMsg{Text: "  headache "})
	next := updated.(Model)
	if len(next.CycleLog.Symptoms) != 1 || next.CycleLog.Symptoms[0] != "headache" {
		t.Fatalf("unexpected symptoms: %#v", next.CycleLog.Symptoms)
	}
	if next.Summary == before {
		t.Fatal("expected summary replaced, not mutated in place")
	}
	if len(next.Summary.Cycle.Symptoms) != 1 || next.Summary.Cycle.Symptoms[0] != "headache" {
		t.Fatalf("unexpected summary symptoms: %#v", next.Summary.Cycle.Symptoms)
	}
	if len(before.Cycle.Symptoms) != 0 {
		t.Fatalf("expected previous cycle state untouched, got %#v", before.Cycle.Symptoms)
	}
}

func TestPaletteShowCommandSwitchesView(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active after /")
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("show insights")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execution")
	}
	if next.CurrentView != ViewInsights {
		t.Fatalf("expected insights view, got %q", next.CurrentView)
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestPaletteUnknownCommandSetsError(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("frobnicate now")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status for unknown command, got %+v", next.Status)
	}
	if next.Palette.Active {
		t.Fatal("expected palette closed after failed command")
	}
}

func TestTickDueRefreshesAndRearms(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := NewModelWithScheduler(engine)
	m.now = fixedClock()

	ev := scheduler.TickEvent{ID: "refresh-loop", Kind: "refresh", TriggerAt: m.now()}
	updated, cmd := m.Update(TickDueMsg{Event: ev})
	next := updated.(Model)

	if next.Summary == nil {
		t.Fatal("expected summary after refresh tick")
	}
	if len(next.TickLog) != 1 || next.TickLog[0].ID != "refresh-loop" {
		t.Fatalf("unexpected tick log: %#v", next.TickLog)
	}
	if cmd == nil {
		t.Fatal("expected rearm command for next tick")
	}
}

func TestTickDuePruneWithoutRepoIsSilent(t *testing.T) {
	m := NewModel()
	m.now = fixedClock()

	ev := scheduler.TickEvent{ID: "prune-loop", Kind: "prune", TriggerAt: m.now()}
	updated, _ := m.Update(TickDueMsg{Event: ev})
	next := updated.(Model)
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	next := updated.(Model)
	if !next.HelpVisible {
		t.Fatal("expected help visible after toggle")
	}
	out := next.View()
	if !strings.Contains(out, "help (Dashboard):") {
		t.Fatalf("expected help panel in output: %q", out)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	next = updated.(Model)
	if next.HelpVisible {
		t.Fatal("expected help hidden after second toggle")
	}
}

func TestNewModelWithConfigAppliesProfile(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Gender = "male"
	cfg.CycleTracking = true
	cfg.RefreshSeconds = 120
	m := NewModelWithConfig(nil, nil, nil, nil, cfg)

	if m.Profile.CycleModelApplies() {
		t.Fatal("expected cycle model inactive for male profile")
	}
	if m.Settings.RefreshInterval != 2*time.Minute {
		t.Fatalf("unexpected refresh interval: %v", m.Settings.RefreshInterval)
	}
}

func TestInjectedFixtureSourceDrivesRefresh(t *testing.T) {
	taken := time.Date(2026, 3, 14, 7, 55, 0, 0, time.UTC)
	src := telemetry.NewFixtureSource([]model.VitalSample{
		{Timestamp: taken, HeartRate: 62, HRV: 58, BloodOxygen: 97.5, SkinTemperature: 36.4, StressLevel: 18},
	})
	src.Sleep = model.SleepRecord{
		TotalDuration: 450, DeepSleep: 90, LightSleep: 240, RemSleep: 90, AwakeTime: 30,
		SleepScore: 88,
		BedTime:    time.Date(2026, 3, 13, 23, 0, 0, 0, time.UTC),
		WakeTime:   time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC),
	}
	src.Activity = model.ActivityRecord{Steps: 9200, Distance: 6.9, CaloriesBurned: 320, ActiveMinutes: 55, StandingHours: 8}
	src.RecoveryScore = 81
	src.MuscleRecovery = 76
	src.EnergyLevel = 70

	cfg := DefaultRuntimeConfig()
	cfg.CycleTracking = true
	m := NewModelWithConfig(nil, nil, nil, src, cfg)
	m.now = fixedClock()

	if err := m.performRefresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	s := m.Summary
	if s == nil {
		t.Fatal("expected summary from fixture source")
	}
	if s.Vitals.HeartRate != 62 || s.Vitals.StressLevel != 18 {
		t.Fatalf("unexpected vitals from fixture: %+v", s.Vitals)
	}
	if s.Sleep.SleepScore != 88 || s.Activity.Steps != 9200 {
		t.Fatalf("unexpected daily records from fixture: sleep=%+v activity=%+v", s.Sleep, s.Activity)
	}
	if s.Recovery.RecoveryScore != 81 || s.Recovery.MuscleRecovery != 76 || s.Recovery.EnergyLevel != 70 {
		t.Fatalf("unexpected recovery tuple from fixture: %+v", s.Recovery)
	}
	if s.NutritionPlan.Calories != 1960 {
		t.Fatalf("expected 1960 kcal for 320 burned, got %d", s.NutritionPlan.Calories)
	}
	if s.Cycle == nil || s.Cycle.CycleDay != 1 {
		t.Fatalf("expected cycle state for day 1, got %+v", s.Cycle)
	}

	if err := m.performRefresh(); !errors.Is(err, telemetry.ErrSourceExhausted) {
		t.Fatalf("expected exhausted fixture error on second refresh, got %v", err)
	}
}

func TestCycleLogStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.json")
	m := NewModel()
	m.stateFilePath = path
	m.CycleLog = CycleLogState{Day: 9, BaselineTemp: 36.5, Symptoms: []string{"cramps", " ", "fatigue"}}

	if err := m.persistCycleLogState(); err != nil {
		t.Fatalf("persist cycle log: %v", err)
	}
	loaded, err := loadCycleLogState(path)
	if err != nil {
		t.Fatalf("load cycle log: %v", err)
	}
	if loaded.Day != 9 || loaded.BaselineTemp != 36.5 {
		t.Fatalf("unexpected loaded state: %+v", loaded)
	}
	if len(loaded.Symptoms) != 2 {
		t.Fatalf("expected blank symptoms filtered, got %#v", loaded.Symptoms)
	}
}

func TestLoadCycleLogStateMissingFile(t *testing.T) {
	loaded, err := loadCycleLogState(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
	if loaded.Day != 0 {
		t.Fatalf("expected zero state, got %+v", loaded)
	}
}
