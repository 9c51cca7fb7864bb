package collection

import (
	"errors"

	"github.com/sandeepkv93/timerd/internal/model"
)

var ErrDuplicateID = errors.New("collection: duplicate timer id")

// List is an ordered, id-addressable timer container.
type List struct {
	items map[string]*model.Timer
	order []string
}

func NewList() *List {
	return &List{items: make(map[string]*model.Timer)}
}

func (l *List) Len() int { return len(l.order) }

func (l *List) Contains(id string) bool {
	_, ok := l.items[id]
	return ok
}

func (l *List) Get(id string) (*model.Timer, bool) {
	t, ok := l.items[id]
	return t, ok
}

func (l *List) IDs() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Ordered returns the timers in display order.
func (l *List) Ordered() []*model.Timer {
	out := make([]*model.Timer, 0, len(l.order))
	for _, id := range l.order {
		if t, ok := l.items[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// At returns the timer at a display position.
func (l *List) At(index int) (*model.Timer, bool) {
	if index < 0 || index >= len(l.order) {
		return nil, false
	}
	return l.Get(l.order[index])
}

func (l *List) append(t *model.Timer) {
	l.items[t.ID] = t
	l.order = append(l.order, t.ID)
}

func (l *List) remove(id string) (*model.Timer, bool) {
	t, ok := l.items[id]
	if !ok {
		return nil, false
	}
	delete(l.items, id)
	kept := l.order[:0]
	for _, other := range l.order {
		if other != id {
			kept = append(kept, other)
		}
	}
	l.order = kept
	return t, true
}

// moveToIndex reinserts id so it lands at the given insertion point, keeping
// every other relative order intact. Indexes beyond either end clamp.
func (l *List) moveToIndex(id string, target int) bool {
	old := -1
	for i, other := range l.order {
		if other == id {
			old = i
			break
		}
	}
	if old < 0 {
		return false
	}
	if old == target || old+1 == target {
		return false
	}

	l.order = append(l.order[:old], l.order[old+1:]...)
	if target > old {
		target--
	}
	if target < 0 {
		target = 0
	}
	if target > len(l.order) {
		target = len(l.order)
	}
	l.order = append(l.order, "")
	copy(l.order[target+1:], l.order[target:])
	l.order[target] = id
	return true
}

// Manager owns the two disjoint timer containers. Every timer lives in
// exactly one of Active or Trash; transfers are moves, never copies, and ids
// stay unique across the union.
type Manager struct {
	Active *List
	Trash  *List
}

func NewManager() *Manager {
	return &Manager{Active: NewList(), Trash: NewList()}
}

func (m *Manager) Contains(id string) bool {
	return m.Active.Contains(id) || m.Trash.Contains(id)
}

// Add appends a timer to the tail of the active order.
func (m *Manager) Add(t *model.Timer) error {
	if m.Contains(t.ID) {
		return ErrDuplicateID
	}
	m.Active.append(t)
	return nil
}

// AddToTrash appends a timer directly to the trash tail; used when loading a
// snapshot.
func (m *Manager) AddToTrash(t *model.Timer) error {
	if m.Contains(t.ID) {
		return ErrDuplicateID
	}
	m.Trash.append(t)
	return nil
}

// Reorder moves an active timer to a new insertion point, stable for all
// other timers.
func (m *Manager) Reorder(id string, target int) bool {
	return m.Active.moveToIndex(id, target)
}

// MoveToTrash transfers ownership from the active list to the trash tail.
func (m *Manager) MoveToTrash(id string) (*model.Timer, bool) {
	t, ok := m.Active.remove(id)
	if !ok {
		return nil, false
	}
	m.Trash.append(t)
	return t, true
}

// Restore transfers ownership back from trash to the active tail.
func (m *Manager) Restore(id string) (*model.Timer, bool) {
	t, ok := m.Trash.remove(id)
	if !ok {
		return nil, false
	}
	m.Active.append(t)
	return t, true
}

// DeletePermanently removes a timer from trash. This is the only
// irreversible removal besides EmptyTrash.
func (m *Manager) DeletePermanently(id string) bool {
	_, ok := m.Trash.remove(id)
	return ok
}

// EmptyTrash drops every trashed timer and reports how many were removed.
func (m *Manager) EmptyTrash() int {
	n := m.Trash.Len()
	m.Trash = NewList()
	return n
}
