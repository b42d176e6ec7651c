package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vitald/internal/scheduler"
	"github.com/sandeepkv93/vitald/internal/views"
)

const stepGoal = 10000

func (m *Model) initBubbleComponents() {
	m.insightList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.insightList.Title = "Insights (list)"
	m.insightList.SetShowHelp(false)
	m.insightList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Metric", Width: 16},
		{Title: "Value", Width: 12},
	}
	m.vitalsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(false), table.WithHeight(8))

	m.askInput = textinput.New()
	m.askInput.Prompt = "ask> "
	m.askInput.CharLimit = 256
	m.askInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.coachViewport = viewport.New(54, 12)

	m.stepsProgress = progress.New(progress.WithDefaultGradient())

	m.refreshSpinner = spinner.New()
	m.refreshSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	if m.Summary != nil {
		items := make([]list.Item, 0, len(m.Summary.Insights))
		for _, in := range m.Summary.Insights {
			items = append(items, listItem{title: in.Title, description: fmt.Sprintf("%s | %s", in.Type, in.Priority)})
		}
		m.insightList.SetItems(items)
		if len(items) > 0 && m.Insights.Cursor < len(items) {
			m.insightList.Select(m.Insights.Cursor)
		}

		rows := []table.Row{
			{"heart rate", fmt.Sprintf("%d bpm", m.Summary.Vitals.HeartRate)},
			{"hrv", fmt.Sprintf("%.0f ms", m.Summary.Vitals.HRV)},
			{"blood oxygen", fmt.Sprintf("%.1f%%", m.Summary.Vitals.BloodOxygen)},
			{"skin temp", fmt.Sprintf("%.1f°C", m.Summary.Vitals.SkinTemperature)},
			{"stress", fmt.Sprintf("%d", m.Summary.Vitals.StressLevel)},
		}
		m.vitalsTable.SetRows(rows)

		pct := float64(m.Summary.Activity.Steps) / float64(stepGoal)
		if pct > 1 {
			pct = 1
		}
		_ = m.stepsProgress.SetPercent(pct)
	}

	m.askInput.SetValue(m.Coach.Input)
	m.commandInput.SetValue(m.Palette.Input)
	if m.Coach.CaptureMode {
		m.askInput.Focus()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if len(m.Coach.History) > 0 {
		var md strings.Builder
		for _, ex := range m.Coach.History {
			md.WriteString(fmt.Sprintf("**you:** %s\n\n%s\n\n", ex.Question, ex.Reply))
		}
		m.coachViewport.SetContent(views.RenderMarkdown(md.String()))
	}
}

func waitForTickCmd(ch <-chan scheduler.TickEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TickDueMsg{Event: ev}
	}
}
