package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/timerd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var lines []string
	for _, kb := range m.viewBindings() {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", kb.Key, kb.Action))
	}
	rendered := views.RenderMarkdown(strings.Join(lines, "\n"))
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    strings.Split(rendered, "\n"),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Add, Action: "add a timer"},
		{Key: m.Keys.Trash, Action: "toggle trash view"},
		{Key: m.Keys.History, Action: "toggle expiry history"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewMain:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "play/pause (re-arm absolute)"},
			{Key: "s", Action: "stop timer"},
			{Key: "r/e", Action: "reset remaining / end time"},
			{Key: "l", Action: "edit label"},
			{Key: "J/K", Action: "move timer down / up"},
			{Key: "d", Action: "move to trash"},
		}
	case ViewTrash:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "u", Action: "restore timer"},
			{Key: "x", Action: "delete permanently"},
			{Key: "X", Action: "empty trash"},
		}
	case ViewHistory:
		return []KeyBinding{
			{Key: m.Keys.History, Action: "back to timers"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
