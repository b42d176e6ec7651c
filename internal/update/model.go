package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/vitald/internal/coach"
	"github.com/sandeepkv93/vitald/internal/cycle"
	"github.com/sandeepkv93/vitald/internal/model"
	"github.com/sandeepkv93/vitald/internal/scheduler"
	"github.com/sandeepkv93/vitald/internal/storage"
	"github.com/sandeepkv93/vitald/internal/summary"
	"github.com/sandeepkv93/vitald/internal/telemetry"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewInsights  View = "Insights"
	ViewCoach     View = "Coach"
	ViewCycle     View = "Cycle"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Insights  string
	Coach     string
	Cycle     string
	Refresh   string
	Help      string
	Quit      string
}

type CoachExchange struct {
	Question string
	Reply    string
	At       time.Time
}

type CoachState struct {
	Input       string
	CaptureMode bool
	History     []CoachExchange
}

// CycleLogState is the manually tracked half of the cycle model: the day
// counter the user advances, the basal temperature baseline, and logged
// symptoms. Everything derived from it lives on the summary's CycleState.
type CycleLogState struct {
	Day          int
	BaselineTemp float64
	Symptoms     []string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type InsightsState struct {
	Cursor int
}

type Model struct {
	CurrentView    View
	Profile        model.Profile
	Settings       model.Settings
	Summary        *model.HealthSummary
	CycleLog       CycleLogState
	Coach          CoachState
	Insights       InsightsState
	Scheduler      *scheduler.Engine
	TickLog        []scheduler.TickEvent
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	source     telemetry.Source
	repo       storage.Repository
	composer   *summary.Composer
	cycleModel *cycle.Model
	responder  *coach.Responder
	now        func() time.Time

	// Bubble components used for rich TUI controls
	insightList    list.Model
	vitalsTable    table.Model
	askInput       textinput.Model
	commandInput   textinput.Model
	coachViewport  viewport.Model
	stepsProgress  progress.Model
	refreshSpinner spinner.Model
	helpModel      help.Model
	spinnerActive  bool
	stateFilePath  string
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type RefreshRequestedMsg struct{}

type AskCoachMsg struct {
	Message string
}

type LogSymptomMsg struct {
	Text string
}

type SetCycleDayMsg struct {
	Day int
}

type TickDueMsg struct {
	Event scheduler.TickEvent
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewDashboard,
		Profile: model.Profile{
			Gender:        model.GenderFemale,
			CycleTracking: true,
		},
		Settings: model.Settings{
			Theme:           "dark",
			Notifications:   true,
			RefreshInterval: time.Minute,
		},
		CycleLog: CycleLogState{
			Day:          1,
			BaselineTemp: 36.4,
		},
		DesktopEnabled: false,
		notifier:       NoopDesktopNotifier{},
		source:         telemetry.NewSimulatedSource(1),
		composer:       summary.NewComposer(),
		cycleModel:     cycle.NewModel(cycle.DefaultConfig()),
		responder:      coach.NewResponder(),
		now:            func() time.Time { return time.Now().UTC() },
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Insights:  "2",
			Coach:     "3",
			Cycle:     "4",
			Refresh:   "r",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithScheduler(engine *scheduler.Engine) Model {
	m := NewModel()
	m.Scheduler = engine
	return m
}

func NewModelWithConfig(engine *scheduler.Engine, notifier DesktopNotifier, repo storage.Repository, source telemetry.Source, cfg RuntimeConfig) Model {
	m := NewModel()
	m.Scheduler = engine
	m.repo = repo
	m.DesktopEnabled = cfg.DesktopNotifications
	m.stateFilePath = strings.TrimSpace(cfg.CycleStatePath)
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg.RefreshSeconds > 0 {
		m.Settings.RefreshInterval = time.Duration(cfg.RefreshSeconds) * time.Second
	}
	if model.Gender(cfg.Gender).IsValid() {
		m.Profile.Gender = model.Gender(cfg.Gender)
	}
	m.Profile.CycleTracking = cfg.CycleTracking && m.Profile.Gender == model.GenderFemale
	switch {
	case source != nil:
		m.source = source
	case cfg.SourceSeed != 0:
		m.source = telemetry.NewSimulatedSource(cfg.SourceSeed)
	}
	if m.stateFilePath != "" {
		if saved, err := loadCycleLogState(m.stateFilePath); err == nil && saved.Day > 0 {
			m.CycleLog = saved
		}
	}
	return m
}
