package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/timeinput"
	"github.com/sandeepkv93/timerd/internal/views"
)

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Add:
		m.AddForm.Active = true
		m.AddForm.TimeFocus = true
		m.labelInput.SetValue("")
		m.timeInput.SetValue("")
		m.timeInput.Focus()
		m.labelInput.Blur()
		m.InputErr = ""
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.Manager.Active.Len()-1 {
			m.Cursor++
		}
	case " ":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.toggleTimer(t.ID)
		}
	case "s":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.stopTimer(t.ID)
		}
	case "r":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.openResetDialog(t.ID, "relative")
		}
	case "e":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.openResetDialog(t.ID, "absolute")
		}
	case "d":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.moveToTrash(t.ID)
		}
	case "K":
		if t, ok := m.Manager.Active.At(m.Cursor); ok && m.Cursor > 0 {
			if m.Manager.Reorder(t.ID, m.Cursor-1) {
				m.Cursor--
				m.Dirty = true
			}
		}
	case "J":
		if t, ok := m.Manager.Active.At(m.Cursor); ok && m.Cursor < m.Manager.Active.Len()-1 {
			if m.Manager.Reorder(t.ID, m.Cursor+2) {
				m.Cursor++
				m.Dirty = true
			}
		}
	case "l":
		if t, ok := m.Manager.Active.At(m.Cursor); ok {
			m.LabelEdit.Active = true
			m.LabelEdit.TimerID = t.ID
			m.labelEditInput.SetValue(t.Label)
			m.labelEditInput.Focus()
		}
	}
	return m, nil
}

func (m Model) handleAddFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.AddForm.Active = false
		m.labelInput.Blur()
		m.timeInput.Blur()
		m.InputErr = ""
		return m, nil
	case "tab", "shift+tab":
		m.AddForm.TimeFocus = !m.AddForm.TimeFocus
		if m.AddForm.TimeFocus {
			m.timeInput.Focus()
			m.labelInput.Blur()
		} else {
			m.labelInput.Focus()
			m.timeInput.Blur()
		}
		return m, nil
	case "enter":
		if m.addTimer(m.labelInput.Value(), m.timeInput.Value()) {
			m.AddForm.Active = false
			m.labelInput.Blur()
			m.timeInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.AddForm.TimeFocus {
		m.timeInput, cmd = m.timeInput.Update(msg)
	} else {
		m.labelInput, cmd = m.labelInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleLabelEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.LabelEdit = LabelEditState{}
		m.labelEditInput.Blur()
		return m, nil
	case "enter":
		if t, ok := m.Manager.Active.Get(m.LabelEdit.TimerID); ok {
			text := strings.TrimSpace(m.labelEditInput.Value())
			if text != "" && text != t.Label {
				t.Label = text
				m.Dirty = true
			}
		}
		m.LabelEdit = LabelEditState{}
		m.labelEditInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.labelEditInput, cmd = m.labelEditInput.Update(msg)
	return m, cmd
}

// addTimer creates a Running timer from the add form. A blank label defaults
// to "Timer {n}". Invalid time input sets the inline error and mutates
// nothing. Reports whether a timer was added.
func (m *Model) addTimer(label, timeText string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		label = fmt.Sprintf("Timer %d", m.Manager.Active.Len()+1)
	}

	now := m.now()
	spec, err := timeinput.Parse(timeText, now)
	if err != nil {
		m.InputErr = err.Error()
		return false
	}

	m.InputErr = ""
	t := model.New(uuid.NewString(), label, spec, now)
	if addErr := m.Manager.Add(t); addErr != nil {
		m.Status = StatusBar{Text: addErr.Error(), IsError: true}
		return false
	}
	m.Cursor = m.Manager.Active.Len() - 1
	m.Dirty = true
	m.Status = StatusBar{Text: fmt.Sprintf("added %s", label), IsError: false}
	return true
}

func (m *Model) toggleTimer(id string) {
	t, ok := m.Manager.Active.Get(id)
	if !ok {
		return
	}
	if t.TogglePlayPause(m.now()) {
		m.Dirty = true
	}
}

func (m *Model) stopTimer(id string) {
	t, ok := m.Manager.Active.Get(id)
	if !ok {
		return
	}
	if t.Stop() {
		m.Alerts.Remove(id)
		m.Dirty = true
	}
}

func (m *Model) resetTimer(id, timeText string) {
	t, ok := m.Manager.Active.Get(id)
	if !ok {
		return
	}
	now := m.now()
	spec, err := timeinput.Parse(timeText, now)
	if err != nil {
		m.InputErr = err.Error()
		return
	}
	m.InputErr = ""
	t.Reset(spec, now)
	m.Alerts.Remove(id)
	m.Dirty = true
}

func (m *Model) moveToTrash(id string) {
	if _, ok := m.Manager.MoveToTrash(id); !ok {
		return
	}
	m.Alerts.Remove(id)
	if m.ResetDialog.Active && m.ResetDialog.TimerID == id {
		m.closeResetDialog()
	}
	if m.Cursor >= m.Manager.Active.Len() && m.Cursor > 0 {
		m.Cursor--
	}
	m.Dirty = true
}

func (m *Model) restoreTimer(id string) {
	if _, ok := m.Manager.Restore(id); !ok {
		return
	}
	if m.TrashCursor >= m.Manager.Trash.Len() && m.TrashCursor > 0 {
		m.TrashCursor--
	}
	m.Dirty = true
}

func (m *Model) deleteTimer(id string) {
	if !m.Manager.DeletePermanently(id) {
		return
	}
	if m.TrashCursor >= m.Manager.Trash.Len() && m.TrashCursor > 0 {
		m.TrashCursor--
	}
	m.Dirty = true
}

func (m *Model) emptyTrash() {
	if m.Manager.EmptyTrash() > 0 {
		m.TrashCursor = 0
		m.Dirty = true
	}
}

func (m *Model) dismissAlert() {
	m.Alerts.Dismiss()
}

func (m Model) renderMainView() string {
	now := m.now()
	rows := make([]views.TimerRowData, 0, m.Manager.Active.Len())
	for i, t := range m.Manager.Active.Ordered() {
		row := views.TimerRowData{
			Index:     i + 1,
			Label:     t.Label,
			Remaining: t.DisplayRemaining(now, m.Alerts.Holds(t.ID)),
			End:       t.DisplayEnd(now),
			State:     string(t.State),
			Paused:    t.Mode == model.ModeRelative && t.State == model.StatePaused,
			Alerting:  m.Alerts.Holds(t.ID),
			Selected:  i == m.Cursor,
		}
		if m.LabelEdit.Active && m.LabelEdit.TimerID == t.ID {
			row.Editing = true
			row.EditView = m.labelEditInput.View()
		}
		rows = append(rows, row)
	}

	table := views.RenderTimerTable(views.TimerTableData{
		Rows:     rows,
		Progress: m.renderCountdownBar(),
	})

	sections := []string{table}
	if form := views.RenderAddForm(views.AddFormData{
		Active:    m.AddForm.Active,
		LabelView: m.labelInput.View(),
		TimeView:  m.timeInput.View(),
	}); form != "" {
		sections = append(sections, form)
	}
	if dialog := m.renderResetDialog(); dialog != "" {
		sections = append(sections, dialog)
	}
	if palette := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); palette != "" {
		sections = append(sections, palette)
	}
	return strings.Join(sections, "\n")
}

// renderCountdownBar shows progress for the selected running relative timer.
func (m Model) renderCountdownBar() string {
	t, ok := m.Manager.Active.At(m.Cursor)
	if !ok || t.Mode != model.ModeRelative || t.State != model.StateRunning || t.InitialSeconds <= 0 {
		return ""
	}
	pct := 1 - t.RemainingSeconds/float64(t.InitialSeconds)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return m.countdownBar.ViewAs(pct)
}

func (m Model) renderTrashView() string {
	now := m.now()
	rows := make([]views.TrashRowData, 0, m.Manager.Trash.Len())
	for i, t := range m.Manager.Trash.Ordered() {
		rows = append(rows, views.TrashRowData{
			Index:     i + 1,
			Label:     t.Label,
			Remaining: t.DisplayRemaining(now, false),
			End:       t.DisplayEnd(now),
			Selected:  i == m.TrashCursor,
		})
	}
	return views.RenderTrashPanel(rows)
}

func (m Model) renderHistoryView() string {
	entries := make([]views.HistoryEntryData, 0, len(m.HistoryEntries))
	for _, e := range m.HistoryEntries {
		entries = append(entries, views.HistoryEntryData{
			Label:      e.Label,
			Mode:       e.Mode,
			FinishedAt: e.FinishedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return views.RenderHistoryPanel(entries)
}
