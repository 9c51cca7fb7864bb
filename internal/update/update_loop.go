package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/timerd/internal/engine"
	"github.com/sandeepkv93/timerd/internal/history"
	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.autosaveCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.countdownBar.Width = minInt(typed.Width-4, 60)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(typed)

	case TickMsg:
		return m.onTick(time.Time(typed))

	case AutosaveTickMsg:
		return m.onAutosaveTick()

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewHistory {
				return m, m.loadHistoryCmd()
			}
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case AddTimerMsg:
		m.addTimer(typed.Label, typed.Time)
		return m, nil

	case ToggleTimerMsg:
		m.toggleTimer(typed.ID)
		return m, nil

	case StopTimerMsg:
		m.stopTimer(typed.ID)
		return m, nil

	case ResetTimerMsg:
		m.resetTimer(typed.ID, typed.Time)
		return m, nil

	case ReorderTimerMsg:
		if m.Manager.Reorder(typed.ID, typed.Index) {
			m.Dirty = true
		}
		return m, nil

	case MoveToTrashMsg:
		m.moveToTrash(typed.ID)
		return m, nil

	case RestoreTimerMsg:
		m.restoreTimer(typed.ID)
		return m, nil

	case DeleteTimerMsg:
		m.deleteTimer(typed.ID)
		return m, nil

	case EmptyTrashMsg:
		m.emptyTrash()
		return m, nil

	case DismissAlertMsg:
		m.dismissAlert()
		return m, nil

	case HistoryEntriesMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("history load failed: %v", typed.Err), IsError: true}
			return m, nil
		}
		m.HistoryEntries = typed.Entries
		return m, nil

	case ExpiryRecordedMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("history write failed: %v", typed.Err), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

// onTick is one engine cycle: advance every active timer against the same
// instant, then surface the next alert if none is presented. Expired timers
// fan out to the desktop notifier and the history log.
func (m Model) onTick(now time.Time) (tea.Model, tea.Cmd) {
	expired, dirty := engine.Pass(m.Manager, m.Alerts, now)
	if dirty {
		m.Dirty = true
	}

	cmds := []tea.Cmd{m.tickCmd()}
	for _, t := range expired {
		if m.DesktopEnabled && m.notifier != nil {
			_ = m.notifier.Send("Time is up!", t.Label)
		}
		if m.HistoryLog != nil {
			cmds = append(cmds, m.recordExpiryCmd(t))
		}
	}

	if _, ok := m.Alerts.Presented(); !ok {
		engine.Promote(m.Manager, m.Alerts)
	}
	return m, tea.Batch(cmds...)
}

// onAutosaveTick flushes the snapshot when dirty. The write happens inside
// the update timeline, decoupled from the tick cadence; on failure the dirty
// flag stays set and the next cycle retries.
func (m Model) onAutosaveTick() (tea.Model, tea.Cmd) {
	if m.Dirty && m.Store != nil {
		if err := m.Store.Save(m.Manager); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("Failed to save state: %v", err), IsError: true}
		} else {
			m.Dirty = false
		}
	}
	return m, m.autosaveCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// A presented alert owns the keyboard until dismissed.
	if _, ok := m.Alerts.Presented(); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			m.dismissAlert()
		}
		return m, nil
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.AddForm.Active {
		return m.handleAddFormKey(msg)
	}
	if m.ResetDialog.Active {
		return m.handleResetDialogKey(msg)
	}
	if m.LabelEdit.Active {
		return m.handleLabelEditKey(msg)
	}

	switch msg.String() {
	case m.Keys.Quit:
		return m.quit()
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Trash:
		if m.CurrentView == ViewTrash {
			m.CurrentView = ViewMain
		} else {
			m.CurrentView = ViewTrash
			m.TrashCursor = 0
		}
		return m, nil
	case m.Keys.History:
		if m.CurrentView == ViewHistory {
			m.CurrentView = ViewMain
			return m, nil
		}
		m.CurrentView = ViewHistory
		return m, m.loadHistoryCmd()
	}

	switch m.CurrentView {
	case ViewMain:
		return m.handleMainKey(msg)
	case ViewTrash:
		return m.handleTrashKey(msg), nil
	}
	return m, nil
}

// quit performs the final synchronous save before shutting the program down.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.Dirty && m.Store != nil {
		if err := m.Store.Save(m.Manager); err == nil {
			m.Dirty = false
		}
	}
	m.Quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if id, ok := m.Alerts.Presented(); ok {
		if t, found := m.Manager.Active.Get(id); found {
			finished := ""
			if t.FinishedAt != nil {
				finished = t.FinishedAt.Format("15:04")
			}
			return views.RenderAlertScreen(views.AlertScreenData{
				Label:      t.Label,
				FinishedAt: finished,
				Width:      m.width,
				Height:     m.height,
			})
		}
	}

	body := ""
	switch m.CurrentView {
	case ViewMain:
		body = m.renderMainView()
	case ViewTrash:
		body = m.renderTrashView()
	case ViewHistory:
		body = m.renderHistoryView()
	}
	if m.HelpVisible {
		body += "\n" + m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		} else {
			status = "status: " + m.Status.Text
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("timerd | view: %s | %d active / %d trash", m.CurrentView, m.Manager.Active.Len(), m.Manager.Trash.Len()),
		Body:       body,
		ErrorLine:  m.InputErr,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s add | %s trash | %s history | / cmd | %s help | %s quit",
			m.Keys.Add, m.Keys.Trash, m.Keys.History, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) autosaveCmd() tea.Cmd {
	return tea.Tick(m.autosaveInterval, func(t time.Time) tea.Msg { return AutosaveTickMsg(t) })
}

func (m Model) loadHistoryCmd() tea.Cmd {
	log := m.HistoryLog
	if log == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := log.Recent(context.Background(), 20)
		return HistoryEntriesMsg{Entries: entries, Err: err}
	}
}

func (m Model) recordExpiryCmd(t *model.Timer) tea.Cmd {
	log := m.HistoryLog
	entry := history.Entry{
		ID:      uuid.NewString(),
		TimerID: t.ID,
		Label:   t.Label,
		Mode:    string(t.Mode),
	}
	if t.FinishedAt != nil {
		entry.FinishedAt = *t.FinishedAt
	}
	return func() tea.Msg {
		return ExpiryRecordedMsg{Err: log.Record(context.Background(), entry)}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewMain, ViewTrash, ViewHistory:
		return true
	default:
		return false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
