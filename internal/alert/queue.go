package alert

// Queue serializes expiry notifications: FIFO by enqueue order (oldest expiry
// first) with at most one presented entry at any instant. Entries are timer
// ids; the caller validates an id against the live collection before
// presenting it.
type Queue struct {
	pending   []string
	presented string
}

func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an expiry episode to the tail. The caller's alerted flag
// guards against enqueueing the same episode twice.
func (q *Queue) Enqueue(id string) {
	q.pending = append(q.pending, id)
}

// PopNext dequeues the head entry for presentation. It does not mark the
// entry presented; call Present once the guard checks pass.
func (q *Queue) PopNext() (string, bool) {
	if q.presented != "" || len(q.pending) == 0 {
		return "", false
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	return head, true
}

// Present records the id whose alert surface is currently shown.
func (q *Queue) Present(id string) {
	q.presented = id
}

// Presented reports the currently shown alert, if any.
func (q *Queue) Presented() (string, bool) {
	return q.presented, q.presented != ""
}

// Dismiss clears the presented alert, making room for the next queued entry
// on the following tick. Reports the id that was dismissed.
func (q *Queue) Dismiss() (string, bool) {
	id := q.presented
	q.presented = ""
	return id, id != ""
}

// Remove cancels every trace of a timer: pending entries are dropped and, if
// the timer's alert is the one presented, it is dismissed. Reports whether a
// presented alert was dismissed.
func (q *Queue) Remove(id string) bool {
	kept := q.pending[:0]
	for _, other := range q.pending {
		if other != id {
			kept = append(kept, other)
		}
	}
	q.pending = kept
	if q.presented == id {
		q.presented = ""
		return true
	}
	return false
}

// Holds reports whether the timer's alert is pending or presented. The view
// uses this to keep a finished timer's cell at 00:00:00 until dismissal.
func (q *Queue) Holds(id string) bool {
	if q.presented == id {
		return true
	}
	for _, other := range q.pending {
		if other == id {
			return true
		}
	}
	return false
}

func (q *Queue) PendingLen() int { return len(q.pending) }
