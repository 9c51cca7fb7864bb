package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleTrashKey(msg tea.KeyMsg) tea.Model {
	switch msg.String() {
	case "up", "k":
		if m.TrashCursor > 0 {
			m.TrashCursor--
		}
	case "down", "j":
		if m.TrashCursor < m.Manager.Trash.Len()-1 {
			m.TrashCursor++
		}
	case "u", "enter":
		if t, ok := m.Manager.Trash.At(m.TrashCursor); ok {
			m.restoreTimer(t.ID)
		}
	case "x":
		if t, ok := m.Manager.Trash.At(m.TrashCursor); ok {
			m.deleteTimer(t.ID)
		}
	case "X":
		m.emptyTrash()
	}
	return m
}
