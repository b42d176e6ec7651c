package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleCycleKey(msg tea.KeyMsg) Model {
	if !m.Profile.CycleModelApplies() {
		return m
	}
	switch msg.String() {
	case "up", "k":
		m.setCycleDay(m.CycleLog.Day + 1)
	case "down", "j":
		m.setCycleDay(m.CycleLog.Day - 1)
	}
	return m
}

func (m *Model) setCycleDay(day int) {
	if day < 1 {
		day = 1
	}
	if day > m.cycleModel.CycleLength() {
		day = 1
	}
	if day == m.CycleLog.Day {
		return
	}
	m.CycleLog.Day = day
	if day == 1 {
		m.CycleLog.Symptoms = nil
	}
	if err := m.persistCycleLogState(); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("persist cycle log: %v", err), IsError: true}
		return
	}
	if err := m.performRefresh(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("cycle day set to %d", day), IsError: false}
}

func (m *Model) logSymptom(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	m.CycleLog.Symptoms = append(m.CycleLog.Symptoms, trimmed)
	if m.Summary != nil && m.Summary.Cycle != nil {
		next := *m.Summary
		state := *next.Cycle
		state.Symptoms = append([]string(nil), m.CycleLog.Symptoms...)
		next.Cycle = &state
		m.Summary = &next
	}
	if err := m.persistCycleLogState(); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("persist cycle log: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("symptom logged: %s", trimmed), IsError: false}
}
