package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/timerd/internal/alert"
	"github.com/sandeepkv93/timerd/internal/collection"
	"github.com/sandeepkv93/timerd/internal/history"
	"github.com/sandeepkv93/timerd/internal/store"
)

type View string

const (
	ViewMain    View = "Main"
	ViewTrash   View = "Trash"
	ViewHistory View = "History"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Trash   string
	History string
	Help    string
	Quit    string
}

type AddFormState struct {
	Active    bool
	TimeFocus bool
}

type ResetDialogState struct {
	Active  bool
	TimerID string
	// Axis is the cell the user clicked into: "relative" edits Remaining,
	// "absolute" edits End Time. It only seeds the dialog's initial value;
	// the parsed input decides the resulting mode.
	Axis string
}

type LabelEditState struct {
	Active  bool
	TimerID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model owns all mutable state: the two timer collections, the alert queue,
// and the dirty flag all live here and are touched only inside Update, which
// keeps the single-writer guarantee without locks.
type Model struct {
	CurrentView View
	Manager     *collection.Manager
	Alerts      *alert.Queue
	Store       *store.Store
	HistoryLog  *history.Log
	Dirty       bool

	Cursor      int
	TrashCursor int

	AddForm     AddFormState
	ResetDialog ResetDialogState
	LabelEdit   LabelEditState
	Palette     CommandPaletteState
	HelpVisible bool

	HistoryEntries []history.Entry

	Status    StatusBar
	InputErr  string
	Keys      GlobalKeyMap
	Quitting  bool
	LastError error

	DesktopEnabled bool
	notifier       DesktopNotifier

	now              func() time.Time
	tickInterval     time.Duration
	autosaveInterval time.Duration
	width            int
	height           int

	labelInput     textinput.Model
	timeInput      textinput.Model
	resetInput     textinput.Model
	labelEditInput textinput.Model
	commandInput   textinput.Model
	countdownBar   progress.Model
	helpModel      help.Model
}

type DesktopNotifier interface {
	Send(title, body string) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(string, string) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type TickMsg time.Time

type AutosaveTickMsg time.Time

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

type AddTimerMsg struct {
	Label string
	Time  string
}

type ToggleTimerMsg struct {
	ID string
}

type StopTimerMsg struct {
	ID string
}

type ResetTimerMsg struct {
	ID   string
	Time string
}

type ReorderTimerMsg struct {
	ID    string
	Index int
}

type MoveToTrashMsg struct {
	ID string
}

type RestoreTimerMsg struct {
	ID string
}

type DeleteTimerMsg struct {
	ID string
}

type EmptyTrashMsg struct{}

type DismissAlertMsg struct{}

type HistoryEntriesMsg struct {
	Entries []history.Entry
	Err     error
}

type ExpiryRecordedMsg struct {
	Err error
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewMain,
		Manager:     collection.NewManager(),
		Alerts:      alert.NewQueue(),
		Keys: GlobalKeyMap{
			Add:     "a",
			Trash:   "t",
			History: "h",
			Help:    "?",
			Quit:    "q",
		},
		notifier:         NoopDesktopNotifier{},
		now:              time.Now,
		tickInterval:     200 * time.Millisecond,
		autosaveInterval: time.Second,
		width:            100,
		height:           30,
	}
	m.initInputs()
	return m
}

// NewModelWithConfig loads the snapshot from disk and wires the runtime
// collaborators. A nil history log disables expiry recording.
func NewModelWithConfig(cfg RuntimeConfig, log *history.Log, notifier DesktopNotifier) Model {
	m := NewModel()
	m.Store = store.NewStore(cfg.StatePath)
	m.Manager = m.Store.Load(m.now())
	m.HistoryLog = log
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg.TickInterval > 0 {
		m.tickInterval = cfg.TickInterval
	}
	if cfg.AutosaveInterval > 0 {
		m.autosaveInterval = cfg.AutosaveInterval
	}
	return m
}

func (m *Model) initInputs() {
	m.labelInput = textinput.New()
	m.labelInput.Placeholder = "Timer"
	m.labelInput.CharLimit = 48
	m.labelInput.Width = 18

	m.timeInput = textinput.New()
	m.timeInput.Placeholder = "HH:MM / M:SS / minutes"
	m.timeInput.CharLimit = 8
	m.timeInput.Width = 14

	m.resetInput = textinput.New()
	m.resetInput.CharLimit = 8
	m.resetInput.Width = 14

	m.labelEditInput = textinput.New()
	m.labelEditInput.CharLimit = 48
	m.labelEditInput.Width = 18

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add 5:00 Tea"
	m.commandInput.CharLimit = 80
	m.commandInput.Width = 40

	m.countdownBar = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

// Now returns the model's clock; tests swap it for a fixed instant.
func (m Model) Now() time.Time { return m.now() }

// SetClock replaces the wall clock used for every time computation.
func (m *Model) SetClock(clock func() time.Time) {
	if clock != nil {
		m.now = clock
	}
}
