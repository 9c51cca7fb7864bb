package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pausedCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	remainingStyle   = lipgloss.NewStyle().Bold(true)
	alertMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dialogStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2)
)

type TimerRowData struct {
	Index     int
	Label     string
	Remaining string
	End       string
	State     string
	Paused    bool
	Alerting  bool
	Selected  bool
	Editing   bool
	EditView  string
}

type TimerTableData struct {
	Rows     []TimerRowData
	Progress string
}

func RenderTimerTable(data TimerTableData) string {
	var b strings.Builder
	b.WriteString("timers:\n")
	b.WriteString(fmt.Sprintf("%-3s %-16s %-12s %-9s %-9s\n", "#", "Label", "Remaining", "End", "State"))
	if len(data.Rows) == 0 {
		b.WriteString("(no timers; press a to add one)\n")
	}
	for _, row := range data.Rows {
		label := row.Label
		if row.Editing {
			label = row.EditView
		}
		remaining := remainingStyle.Render(row.Remaining)
		if row.Paused {
			remaining = pausedCellStyle.Render(row.Remaining)
		}
		line := fmt.Sprintf("%-3d %-16s %-12s %-9s %-9s", row.Index, label, remaining, row.End, row.State)
		if row.Alerting {
			line += " " + alertMarkStyle.Render("⏰")
		}
		if row.Selected {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if data.Progress != "" {
		b.WriteString(data.Progress + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type TrashRowData struct {
	Index     int
	Label     string
	Remaining string
	End       string
	Selected  bool
}

func RenderTrashPanel(rows []TrashRowData) string {
	var b strings.Builder
	b.WriteString("trash:\n")
	b.WriteString("actions: [u]restore [x]delete [X]empty [t]back\n")
	if len(rows) == 0 {
		b.WriteString("(trash is empty)\n")
	}
	for _, row := range rows {
		line := fmt.Sprintf("%-3d %-16s %-12s %-9s", row.Index, row.Label, row.Remaining, row.End)
		if row.Selected {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type AddFormData struct {
	Active    bool
	LabelView string
	TimeView  string
}

func RenderAddForm(data AddFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("add timer (HH:MM / M:SS / minutes):\n")
	b.WriteString("label: " + data.LabelView + "\n")
	b.WriteString("time:  " + data.TimeView + "\n")
	b.WriteString("[enter]add [tab]switch field [esc]cancel")
	return dialogStyle.Render(b.String())
}

type ResetDialogData struct {
	Active    bool
	Label     string
	Axis      string
	InputView string
}

func RenderResetDialog(data ResetDialogData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("reset timer: " + data.Label + "\n")
	b.WriteString("editing: " + data.Axis + "\n")
	b.WriteString("new time (HH:MM / M:SS / minutes): " + data.InputView + "\n")
	b.WriteString("HH:MM re-arms End Time; M:SS or minutes re-arm Remaining\n")
	b.WriteString("[enter]apply [esc]close")
	return dialogStyle.Render(b.String())
}

type HistoryEntryData struct {
	Label      string
	Mode       string
	FinishedAt string
}

func RenderHistoryPanel(entries []HistoryEntryData) string {
	var b strings.Builder
	b.WriteString("expiry history (newest first):\n")
	if len(entries) == 0 {
		b.WriteString("(no recorded expiries)")
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-16s %-9s %s\n", e.Label, e.Mode, e.FinishedAt))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return dialogStyle.Render("command: " + inputView + "\nadd <time> [label] | reset <n> <time> | trash <n> | restore <n> | empty")
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help (" + data.CurrentView + "):\n")
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimRight(b.String(), "\n")
}
