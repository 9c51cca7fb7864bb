package model

import (
	"fmt"
	"time"
)

const placeholderClock = "--:--"

// FormatRemaining renders a second count as HH:MM:SS.
func FormatRemaining(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DisplayRemaining is the remaining-time cell of the view projection.
// A finished timer shows 00:00:00 only while its alert is pending or
// presented; once dismissed the cell returns to a placeholder (absolute) or
// the reset baseline (relative).
func (t *Timer) DisplayRemaining(now time.Time, alertVisible bool) string {
	if t.Mode == ModeAbsolute {
		switch t.State {
		case StateStopped:
			return placeholderClock
		case StateFinished:
			if alertVisible {
				return FormatRemaining(0)
			}
			return placeholderClock
		default:
			return FormatRemaining(t.AbsoluteRemaining(now))
		}
	}

	switch t.State {
	case StateFinished:
		if alertVisible {
			return FormatRemaining(0)
		}
		return FormatRemaining(t.InitialSeconds)
	case StateStopped:
		return FormatRemaining(t.InitialSeconds)
	default:
		return FormatRemaining(int(t.RemainingSeconds))
	}
}

// DisplayEnd is the end-of-countdown cell: the armed clock time for absolute
// timers, the projected ETA for a running relative timer, a placeholder
// otherwise.
func (t *Timer) DisplayEnd(now time.Time) string {
	if t.Mode == ModeAbsolute {
		if t.TargetHHMM != "" {
			return t.TargetHHMM
		}
		if t.TargetEpoch != nil {
			return t.TargetEpoch.In(now.Location()).Format("15:04")
		}
		return placeholderClock
	}

	switch t.State {
	case StateRunning:
		eta := now.Add(time.Duration(int(t.RemainingSeconds)) * time.Second)
		return eta.Format("15:04")
	default:
		return placeholderClock
	}
}
