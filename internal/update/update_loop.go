package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vitald/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForTickCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		keyStr := typed.String()
		if m.CurrentView == ViewCoach && m.Coach.CaptureMode && keyStr != "ctrl+c" &&
			keyStr != m.Keys.Dashboard && keyStr != m.Keys.Insights && keyStr != m.Keys.Coach && keyStr != m.Keys.Cycle &&
			keyStr != m.Keys.Help && keyStr != "/" && keyStr != m.Keys.Quit {
			return m.handleCoachKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Insights:
			m.CurrentView = ViewInsights
			return m, nil
		case m.Keys.Coach:
			m.CurrentView = ViewCoach
			m.Coach.CaptureMode = true
			m.askInput.Focus()
			return m, nil
		case m.Keys.Cycle:
			m.CurrentView = ViewCycle
			return m, nil
		case m.Keys.Refresh:
			m.spinnerActive = true
			if err := m.performRefresh(); err != nil {
				m.spinnerActive = false
				m.LastError = err
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				m.notify("Refresh Failed", err.Error(), "error")
				return m, nil
			}
			m.Status = StatusBar{Text: "health data refreshed", IsError: false}
			return m, m.refreshSpinner.Tick
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewInsights:
			return m.handleInsightsKey(typed), nil
		case ViewCoach:
			return m.handleCoachKey(typed), nil
		case ViewCycle:
			return m.handleCycleKey(typed), nil
		}
	case spinner.TickMsg:
		if m.spinnerActive {
			m.spinnerActive = false
			var cmd tea.Cmd
			m.refreshSpinner, cmd = m.refreshSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewCoach {
				m.Coach.CaptureMode = true
				m.askInput.Focus()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case RefreshRequestedMsg:
		if err := m.performRefresh(); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "health data refreshed", IsError: false}
		}
		return m, nil
	case AskCoachMsg:
		m.CurrentView = ViewCoach
		m.askCoach(typed.Message)
		return m, nil
	case LogSymptomMsg:
		m.logSymptom(typed.Text)
		return m, nil
	case SetCycleDayMsg:
		m.setCycleDay(typed.Day)
		return m, nil
	case TickDueMsg:
		m.TickLog = append(m.TickLog, typed.Event)
		if len(m.TickLog) > 20 {
			m.TickLog = m.TickLog[len(m.TickLog)-20:]
		}
		switch typed.Event.Kind {
		case "refresh":
			if err := m.performRefresh(); err != nil {
				m.LastError = err
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: "background refresh complete", IsError: false}
			}
		case "prune":
			if pruned, err := m.pruneHistory(); err != nil {
				m.Status = StatusBar{Text: fmt.Sprintf("prune history: %v", err), IsError: true}
			} else if pruned > 0 {
				m.Status = StatusBar{Text: fmt.Sprintf("pruned %d expired record(s)", pruned), IsError: false}
			}
		}
		if m.Scheduler != nil {
			return m, waitForTickCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = joinPanes(m.renderNutritionView(), m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewInsights:
		leftPane = m.renderInsightsView()
		rightPane = joinPanes(m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewCoach:
		leftPane = m.renderCoachView()
		rightPane = joinPanes(m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewCycle:
		leftPane = m.renderCycleView()
		rightPane = joinPanes(m.renderNutritionView(), m.renderCommandPalette(), m.renderHelpIfVisible())
	}
	notificationView := ""
	if len(m.TickLog) > 0 {
		last := m.TickLog[len(m.TickLog)-1]
		notificationView = fmt.Sprintf("last-tick: %s @ %s", last.ID, last.TriggerAt.Format("15:04:05"))
	}
	if m.spinnerActive {
		spin := m.refreshSpinner.View()
		notificationView = strings.TrimSpace(strings.Join([]string{notificationView, "refresh: " + spin + " running"}, "\n"))
	}
	notificationView = strings.TrimSpace(strings.Join([]string{
		notificationView,
		strings.TrimSpace(m.renderNotificationsView()),
	}, "\n"))

	header := fmt.Sprintf("vitald | view: %s", m.CurrentView)
	if m.Summary != nil {
		header = fmt.Sprintf("vitald | view: %s | %s | overall %d", m.CurrentView, m.Summary.Date.Format("2006-01-02"), m.Summary.OverallScore)
	}

	return views.RenderApp(views.AppData{
		Header:        header,
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notification:  notificationView,
		Footer:        fmt.Sprintf("keys: %s dash | %s insights | %s coach | %s cycle | / cmd | %s refresh | %s help | %s quit", m.Keys.Dashboard, m.Keys.Insights, m.Keys.Coach, m.Keys.Cycle, m.Keys.Refresh, m.Keys.Help, m.Keys.Quit),
	})
}

func joinPanes(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewInsights, ViewCoach, ViewCycle:
		return true
	default:
		return false
	}
}
