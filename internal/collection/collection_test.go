package collection

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/timeinput"
)

func newTimer(t *testing.T, id string) *model.Timer {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	spec, err := timeinput.Parse("5:00", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return model.New(id, "Timer "+id, spec, now)
}

func orderOf(l *List) []string {
	return l.IDs()
}

func sameOrder(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func seedManager(t *testing.T, ids ...string) *Manager {
	t.Helper()
	mgr := NewManager()
	for _, id := range ids {
		if err := mgr.Add(newTimer(t, id)); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	return mgr
}

func TestAddRejectsDuplicateAcrossLists(t *testing.T) {
	mgr := seedManager(t, "a")
	if err := mgr.Add(newTimer(t, "a")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	mgr.MoveToTrash("a")
	if err := mgr.Add(newTimer(t, "a")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("trashed id must still block reuse, got %v", err)
	}
}

func TestReorderInsertionSemantics(t *testing.T) {
	mgr := seedManager(t, "a", "b", "c", "d")

	if !mgr.Reorder("a", 2) {
		t.Fatalf("expected move to change order")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"b", "a", "c", "d"}) {
		t.Fatalf("unexpected order after move down: %v", got)
	}

	if !mgr.Reorder("d", 0) {
		t.Fatalf("expected move to front to change order")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"d", "b", "a", "c"}) {
		t.Fatalf("unexpected order after move to front: %v", got)
	}
}

func TestReorderNoOpPositions(t *testing.T) {
	mgr := seedManager(t, "a", "b", "c")

	if mgr.Reorder("b", 1) {
		t.Fatalf("target == current index must be a no-op")
	}
	if mgr.Reorder("b", 2) {
		t.Fatalf("target == current index + 1 must be a no-op")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"a", "b", "c"}) {
		t.Fatalf("order must be unchanged: %v", got)
	}
}

func TestReorderClampsOutOfRange(t *testing.T) {
	mgr := seedManager(t, "a", "b", "c")

	if !mgr.Reorder("a", 99) {
		t.Fatalf("expected clamp to tail to change order")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"b", "c", "a"}) {
		t.Fatalf("unexpected order after clamp: %v", got)
	}

	if !mgr.Reorder("a", -5) {
		t.Fatalf("expected clamp to head to change order")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order after head clamp: %v", got)
	}
}

func TestReorderUnknownID(t *testing.T) {
	mgr := seedManager(t, "a")
	if mgr.Reorder("ghost", 0) {
		t.Fatalf("unknown id must report no change")
	}
}

func TestMoveToTrashAndRestore(t *testing.T) {
	mgr := seedManager(t, "a", "b", "c")

	moved, ok := mgr.MoveToTrash("b")
	if !ok || moved.ID != "b" {
		t.Fatalf("expected b moved, got %v %v", moved, ok)
	}
	if mgr.Active.Contains("b") || !mgr.Trash.Contains("b") {
		t.Fatalf("timer must live in exactly one list")
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"a", "c"}) {
		t.Fatalf("active order after trash: %v", got)
	}

	restored, ok := mgr.Restore("b")
	if !ok || restored.ID != "b" {
		t.Fatalf("expected b restored, got %v %v", restored, ok)
	}
	if got := orderOf(mgr.Active); !sameOrder(got, []string{"a", "c", "b"}) {
		t.Fatalf("restore must append to active tail: %v", got)
	}
	if mgr.Trash.Len() != 0 {
		t.Fatalf("trash must be empty after restore")
	}
}

func TestDeletePermanentlyAndEmptyTrash(t *testing.T) {
	mgr := seedManager(t, "a", "b", "c")
	mgr.MoveToTrash("a")
	mgr.MoveToTrash("b")

	if !mgr.DeletePermanently("a") {
		t.Fatalf("expected delete to succeed")
	}
	if mgr.DeletePermanently("a") {
		t.Fatalf("second delete must fail")
	}
	if mgr.DeletePermanently("c") {
		t.Fatalf("active timers cannot be deleted directly")
	}

	if n := mgr.EmptyTrash(); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}
	if mgr.Trash.Len() != 0 || mgr.Active.Len() != 1 {
		t.Fatalf("unexpected sizes: trash=%d active=%d", mgr.Trash.Len(), mgr.Active.Len())
	}
}

func TestAtAndOrdered(t *testing.T) {
	mgr := seedManager(t, "a", "b")

	timer, ok := mgr.Active.At(1)
	if !ok || timer.ID != "b" {
		t.Fatalf("expected b at index 1, got %v %v", timer, ok)
	}
	if _, ok := mgr.Active.At(2); ok {
		t.Fatalf("out-of-range index must miss")
	}
	if _, ok := mgr.Active.At(-1); ok {
		t.Fatalf("negative index must miss")
	}

	ordered := mgr.Active.Ordered()
	if len(ordered) != 2 || ordered[0].ID != "a" || ordered[1].ID != "b" {
		t.Fatalf("unexpected ordered slice: %v", ordered)
	}
}
