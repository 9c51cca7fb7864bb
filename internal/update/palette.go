package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timerd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return m, nil
	case "enter":
		m.executePaletteCommand(m.commandInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.Blur()
}

// executePaletteCommand routes parsed palette input to the same mutation
// paths the key bindings use. Row numbers are 1-based display positions.
func (m *Model) executePaletteCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}

	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			if !m.addTimer(args.Label, args.Time) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.InputErr}
			}
			return commands.Result{Message: "timer added"}, nil
		},
		Reset: func(args commands.ResetArgs) (commands.Result, error) {
			t, ok := m.Manager.Active.At(args.Row - 1)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no timer at row %d", args.Row)}
			}
			m.resetTimer(t.ID, args.Time)
			if m.InputErr != "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.InputErr}
			}
			return commands.Result{Message: fmt.Sprintf("reset %s", t.Label)}, nil
		},
		Trash: func(args commands.RowArgs) (commands.Result, error) {
			t, ok := m.Manager.Active.At(args.Row - 1)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no timer at row %d", args.Row)}
			}
			m.moveToTrash(t.ID)
			return commands.Result{Message: fmt.Sprintf("trashed %s", t.Label)}, nil
		},
		Restore: func(args commands.RowArgs) (commands.Result, error) {
			t, ok := m.Manager.Trash.At(args.Row - 1)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no trashed timer at row %d", args.Row)}
			}
			m.restoreTimer(t.ID)
			return commands.Result{Message: fmt.Sprintf("restored %s", t.Label)}, nil
		},
		Empty: func() (commands.Result, error) {
			m.emptyTrash()
			return commands.Result{Message: "trash emptied"}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if result.Message != "" {
		m.Status = StatusBar{Text: result.Message, IsError: false}
	}
	m.closePalette()
}
