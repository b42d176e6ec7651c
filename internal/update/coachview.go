package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const maxCoachHistory = 20

func (m Model) handleCoachKey(msg tea.KeyMsg) Model {
	if m.Coach.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Coach.CaptureMode = false
			m.askInput.Blur()
			m.Status = StatusBar{Text: "coach browse mode", IsError: false}
			return m
		case "enter":
			m.askCoach(m.askInput.Value())
			m.askInput.SetValue("")
			m.Coach.Input = ""
			return m
		}
		var cmd tea.Cmd
		m.askInput, cmd = m.askInput.Update(msg)
		_ = cmd
		m.Coach.Input = m.askInput.Value()
		return m
	}

	switch msg.String() {
	case "i", "enter":
		m.Coach.CaptureMode = true
		m.askInput.Focus()
		m.Status = StatusBar{Text: "coach ask mode", IsError: false}
	default:
		if msg.Type == tea.KeyRunes {
			m.Coach.CaptureMode = true
			m.askInput.Focus()
			m.askInput.SetValue(string(msg.Runes))
			m.Coach.Input = m.askInput.Value()
			return m
		}
	}
	return m
}

func (m *Model) askCoach(message string) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return
	}
	if m.Summary == nil {
		if err := m.performRefresh(); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return
		}
	}
	reply := m.responder.Respond(trimmed, *m.Summary)
	m.Coach.History = append(m.Coach.History, CoachExchange{
		Question: trimmed,
		Reply:    reply,
		At:       m.now().UTC(),
	})
	if len(m.Coach.History) > maxCoachHistory {
		m.Coach.History = m.Coach.History[len(m.Coach.History)-maxCoachHistory:]
	}
	m.Coach.Input = ""
	m.Status = StatusBar{Text: "coach replied", IsError: false}
}
