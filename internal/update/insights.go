package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vitald/internal/model"
)

func (m Model) handleInsightsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Insights.Cursor > 0 {
			m.Insights.Cursor--
		}
	case "down", "j":
		if m.Insights.Cursor < m.insightCount()-1 {
			m.Insights.Cursor++
		}
	}
	return m
}

func (m Model) insightCount() int {
	if m.Summary == nil {
		return 0
	}
	return len(m.Summary.Insights)
}

func (m Model) currentInsight() (model.Insight, bool) {
	if m.Summary == nil || len(m.Summary.Insights) == 0 {
		return model.Insight{}, false
	}
	if m.Insights.Cursor < 0 || m.Insights.Cursor >= len(m.Summary.Insights) {
		return model.Insight{}, false
	}
	return m.Summary.Insights[m.Insights.Cursor], true
}
