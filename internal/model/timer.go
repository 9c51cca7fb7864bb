package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/timerd/internal/timeinput"
)

var (
	ErrInvalidMode  = errors.New("model: invalid timer mode")
	ErrInvalidState = errors.New("model: invalid timer state")
)

type Mode string

const (
	ModeRelative Mode = "relative"
	ModeAbsolute Mode = "absolute"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeRelative, ModeAbsolute:
		return true
	default:
		return false
	}
}

type State string

const (
	StateRunning  State = "Running"
	StatePaused   State = "Paused"
	StateStopped  State = "Stopped"
	StateFinished State = "Finished"
)

func (s State) IsValid() bool {
	switch s {
	case StateRunning, StatePaused, StateStopped, StateFinished:
		return true
	default:
		return false
	}
}

// Timer is the per-timer domain entity. It holds no rendering state; the view
// layer derives everything it shows from Display* projections.
//
// For ModeAbsolute, TargetHHMM is the source of truth when re-arming: a new
// target epoch is always recomputed from the clock-time string so a long
// pause cannot drift the deadline across day boundaries.
type Timer struct {
	ID               string
	Label            string
	Mode             Mode
	State            State
	TargetEpoch      *time.Time
	TargetHHMM       string
	RemainingSeconds float64
	InitialSeconds   int
	LastTick         *time.Time
	FinishedAt       *time.Time
	Alerted          bool
}

// New creates a Running timer from a parsed time spec.
func New(id, label string, spec timeinput.Spec, now time.Time) *Timer {
	t := &Timer{
		ID:    id,
		Label: label,
		Mode:  Mode(spec.Mode),
		State: StateRunning,
	}
	if t.Mode == ModeAbsolute {
		target := spec.Target
		t.TargetEpoch = &target
		t.TargetHHMM = spec.Normalized
		return t
	}
	t.InitialSeconds = spec.Seconds
	t.RemainingSeconds = float64(spec.Seconds)
	tick := now
	t.LastTick = &tick
	return t
}

func (t *Timer) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: timer id is required")
	}
	if strings.TrimSpace(t.Label) == "" {
		return errors.New("model: timer label is required")
	}
	if !t.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, t.Mode)
	}
	if !t.State.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, t.State)
	}
	if t.RemainingSeconds < 0 {
		return errors.New("model: remaining_seconds must not be negative")
	}
	if t.State == StateFinished && t.FinishedAt == nil {
		return errors.New("model: finished_at is required when timer state is Finished")
	}
	if t.Mode == ModeAbsolute {
		if t.State == StatePaused {
			return errors.New("model: absolute timers cannot be Paused")
		}
		if t.TargetEpoch == nil {
			return errors.New("model: absolute timer requires a target epoch")
		}
		return nil
	}
	if t.InitialSeconds < 1 {
		return errors.New("model: relative timer requires initial_seconds >= 1")
	}
	return nil
}

// TogglePlayPause drives the play/pause control. A running relative timer
// pauses; a running absolute timer ignores the press. From any other state
// play restarts (when finished or exhausted) or resumes; an absolute timer
// always re-arms from its clock time, rolling a day forward when that time
// already passed. Reports whether the timer changed.
func (t *Timer) TogglePlayPause(now time.Time) bool {
	if t.State == StateRunning {
		if t.Mode != ModeRelative {
			return false
		}
		t.State = StatePaused
		t.LastTick = nil
		return true
	}

	if t.Mode == ModeAbsolute {
		if t.TargetEpoch == nil {
			return false
		}
		next := t.NextAbsoluteTarget(now)
		t.TargetEpoch = &next
		t.State = StateRunning
		t.FinishedAt = nil
		t.Alerted = false
		return true
	}

	if t.State == StateFinished || t.RemainingSeconds <= 0 {
		t.RemainingSeconds = float64(t.InitialSeconds)
	}
	t.State = StateRunning
	tick := now
	t.LastTick = &tick
	t.FinishedAt = nil
	t.Alerted = false
	return true
}

// Stop halts a running or paused timer. Relative timers rewind to their
// initial duration; absolute timers keep their target. Stopping a Finished
// timer is a no-op (play is the way out of Finished). Reports whether the
// timer changed.
func (t *Timer) Stop() bool {
	if t.State == StateFinished {
		return false
	}
	t.State = StateStopped
	t.LastTick = nil
	t.FinishedAt = nil
	if t.Mode == ModeRelative {
		t.RemainingSeconds = float64(t.InitialSeconds)
		t.Alerted = false
	}
	return true
}

// Reset re-arms the timer from a freshly parsed spec. The parsed mode wins:
// entering HH:MM on a relative timer converts it to absolute and vice versa.
func (t *Timer) Reset(spec timeinput.Spec, now time.Time) {
	t.Mode = Mode(spec.Mode)
	t.State = StateRunning
	t.FinishedAt = nil
	t.Alerted = false
	tick := now
	t.LastTick = &tick

	if t.Mode == ModeAbsolute {
		target := spec.Target
		t.TargetEpoch = &target
		t.TargetHHMM = spec.Normalized
		t.RemainingSeconds = 0
		t.InitialSeconds = 0
		return
	}
	t.InitialSeconds = spec.Seconds
	t.RemainingSeconds = float64(spec.Seconds)
	t.TargetEpoch = nil
	t.TargetHHMM = ""
}

// Advance runs one tick-engine pass over this timer. It is idempotent for a
// repeated instant: a zero delta neither decrements nor re-fires. Reports
// whether the timer just expired and whether it changed in a way the
// snapshot must record (routine decrements do not dirty the snapshot; the
// expiry transition does).
func (t *Timer) Advance(now time.Time) (expired, dirty bool) {
	if t.State != StateRunning {
		return false, false
	}

	if t.Mode == ModeAbsolute {
		if t.AbsoluteRemaining(now) > 0 {
			return false, false
		}
		t.State = StateFinished
		finished := now
		t.FinishedAt = &finished
		if !t.Alerted {
			t.Alerted = true
			return true, true
		}
		return false, true
	}

	if t.LastTick == nil {
		tick := now
		t.LastTick = &tick
	}
	delta := now.Sub(*t.LastTick).Seconds()
	if delta > 0 {
		t.RemainingSeconds = maxFloat(0, t.RemainingSeconds-delta)
		tick := now
		t.LastTick = &tick
	}
	if t.RemainingSeconds > 0 {
		return false, false
	}

	t.RemainingSeconds = 0
	t.State = StateFinished
	finished := now
	t.FinishedAt = &finished
	t.LastTick = nil
	if !t.Alerted {
		t.Alerted = true
		return true, true
	}
	return false, true
}

// NextAbsoluteTarget computes the next occurrence of the timer's clock time,
// preferring the stored HH:MM string over the stale epoch.
func (t *Timer) NextAbsoluteTarget(now time.Time) time.Time {
	hour, minute := now.Hour(), now.Minute()
	if spec, err := timeinput.Parse(t.TargetHHMM, now); err == nil && spec.Mode == timeinput.ModeAbsolute {
		t.TargetHHMM = spec.Normalized
		return spec.Target
	}
	if t.TargetEpoch != nil {
		local := t.TargetEpoch.In(now.Location())
		hour, minute = local.Hour(), local.Minute()
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	t.TargetHHMM = fmt.Sprintf("%02d:%02d", hour, minute)
	return target
}

// AbsoluteRemaining reports whole seconds until the absolute target, floored
// at zero. Always zero for timers without a target.
func (t *Timer) AbsoluteRemaining(now time.Time) int {
	if t.TargetEpoch == nil {
		return 0
	}
	remaining := int(t.TargetEpoch.Sub(now).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
