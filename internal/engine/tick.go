package engine

import (
	"time"

	"github.com/sandeepkv93/timerd/internal/alert"
	"github.com/sandeepkv93/timerd/internal/collection"
	"github.com/sandeepkv93/timerd/internal/model"
)

// Pass runs one recomputation cycle over the active collection. Trash is
// inert and never ticked. Each timer is advanced independently against the
// same instant; newly expired timers are queued for alert delivery exactly
// once per expiry episode. Returns the timers that expired on this pass and
// whether the snapshot needs saving.
func Pass(mgr *collection.Manager, q *alert.Queue, now time.Time) (expired []*model.Timer, dirty bool) {
	for _, t := range mgr.Active.Ordered() {
		fired, changed := t.Advance(now)
		if fired {
			q.Enqueue(t.ID)
			expired = append(expired, t)
		}
		if changed {
			dirty = true
		}
	}
	return expired, dirty
}

// Promote surfaces the next queued alert when none is presented. The head
// entry is dropped without presentation if its timer left the active
// collection or is no longer Finished, which covers a delete or reset racing
// the queue.
func Promote(mgr *collection.Manager, q *alert.Queue) (*model.Timer, bool) {
	id, ok := q.PopNext()
	if !ok {
		return nil, false
	}
	t, ok := mgr.Active.Get(id)
	if !ok || t.State != model.StateFinished {
		return nil, false
	}
	q.Present(id)
	return t, true
}
