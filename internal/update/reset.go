package update

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/timeinput"
	"github.com/sandeepkv93/timerd/internal/views"
)

// openResetDialog seeds the input from the cell the user is editing. The
// axis only picks the starting text; whatever the user types decides the
// resulting mode.
func (m *Model) openResetDialog(id, axis string) {
	t, ok := m.Manager.Active.Get(id)
	if !ok {
		return
	}

	seed := ""
	switch axis {
	case "absolute":
		switch {
		case t.TargetHHMM != "":
			seed = t.TargetHHMM
		case t.TargetEpoch != nil:
			seed = t.TargetEpoch.Format("15:04")
		default:
			seed = m.now().Format("15:04")
		}
	default:
		axis = "relative"
		if t.Mode == model.ModeRelative {
			remaining := int(math.Round(t.RemainingSeconds))
			if t.State == model.StateStopped || remaining <= 0 {
				remaining = t.InitialSeconds
			}
			seed = timeinput.FormatRelative(remaining)
		} else {
			seed = "0:30"
		}
	}

	m.ResetDialog = ResetDialogState{Active: true, TimerID: id, Axis: axis}
	m.resetInput.SetValue(seed)
	m.resetInput.CursorEnd()
	m.resetInput.Focus()
	m.InputErr = ""
}

func (m *Model) closeResetDialog() {
	m.ResetDialog = ResetDialogState{}
	m.resetInput.Blur()
	m.InputErr = ""
}

func (m Model) handleResetDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeResetDialog()
		return m, nil
	case "enter":
		m.applyReset()
		return m, nil
	}
	var cmd tea.Cmd
	m.resetInput, cmd = m.resetInput.Update(msg)
	return m, cmd
}

func (m *Model) applyReset() {
	text := strings.TrimSpace(m.resetInput.Value())
	if text == "" {
		m.InputErr = "Reset time is required."
		return
	}
	m.resetTimer(m.ResetDialog.TimerID, text)
	if m.InputErr == "" {
		m.closeResetDialog()
	}
}

func (m Model) renderResetDialog() string {
	if !m.ResetDialog.Active {
		return ""
	}
	label := ""
	if t, ok := m.Manager.Active.Get(m.ResetDialog.TimerID); ok {
		label = t.Label
	}
	return views.RenderResetDialog(views.ResetDialogData{
		Active:    true,
		Label:     label,
		Axis:      m.ResetDialog.Axis,
		InputView: m.resetInput.View(),
	})
}
