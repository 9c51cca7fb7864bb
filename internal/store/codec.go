package store

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/timeinput"
)

// Record is the durable field projection of one timer. The legacy fields at
// the bottom are accepted as fallback sources when decoding snapshots written
// by earlier versions; they are never written.
type Record struct {
	TimerID          string   `json:"timer_id"`
	Label            string   `json:"label"`
	InputMode        string   `json:"input_mode"`
	State            string   `json:"state"`
	TargetEpoch      *float64 `json:"target_epoch"`
	TargetHHMM       *string  `json:"target_hhmm"`
	RemainingSeconds int      `json:"remaining_seconds"`
	InitialSeconds   int      `json:"initial_seconds"`
	FinishedAt       *string  `json:"finished_at"`
	Alerted          bool     `json:"alerted"`

	EndTime         *string  `json:"end_time,omitempty"`
	PresetAbsolute  *string  `json:"preset_absolute,omitempty"`
	PresetRelative  *string  `json:"preset_relative,omitempty"`
	PausedRemaining *float64 `json:"paused_remaining,omitempty"`
}

// EncodeTimer projects a timer onto its record. Remaining time is persisted
// as a rounded non-negative integer; sub-second remainder is not preserved
// across restarts.
func EncodeTimer(t *model.Timer) Record {
	rec := Record{
		TimerID:          t.ID,
		Label:            t.Label,
		InputMode:        string(t.Mode),
		State:            string(t.State),
		RemainingSeconds: int(math.Max(0, math.Round(t.RemainingSeconds))),
		InitialSeconds:   t.InitialSeconds,
		Alerted:          t.Alerted,
	}
	if t.TargetEpoch != nil {
		epoch := float64(t.TargetEpoch.UnixMilli()) / 1000
		rec.TargetEpoch = &epoch
	}
	if t.TargetHHMM != "" {
		hhmm := t.TargetHHMM
		rec.TargetHHMM = &hhmm
	}
	if t.FinishedAt != nil {
		finished := t.FinishedAt.Format(time.RFC3339Nano)
		rec.FinishedAt = &finished
	}
	return rec
}

// DecodeTimer rebuilds a timer from a record, tolerating missing and legacy
// fields. Returns nil for records that cannot be recovered: a blank label,
// or an absolute timer with no target in either target_epoch or end_time.
// A record loaded in state Running resumes ticking from now, so wall time
// spent offline is not consumed as countdown.
func DecodeTimer(rec Record, now time.Time) *model.Timer {
	id := strings.TrimSpace(rec.TimerID)
	if id == "" {
		id = uuid.NewString()
	}
	if strings.TrimSpace(rec.Label) == "" {
		return nil
	}

	mode := model.Mode(rec.InputMode)
	if !mode.IsValid() {
		mode = model.ModeRelative
	}

	t := &model.Timer{
		ID:      id,
		Label:   rec.Label,
		Mode:    mode,
		State:   model.StateStopped,
		Alerted: rec.Alerted,
	}
	if state := model.State(rec.State); state.IsValid() {
		t.State = state
	}
	t.FinishedAt = parseInstant(rec.FinishedAt, now.Location())
	if t.State == model.StateFinished && t.FinishedAt == nil {
		t.State = model.StateStopped
	}

	if mode == model.ModeAbsolute {
		decodeAbsolute(t, rec, now)
		if t.TargetEpoch == nil {
			return nil
		}
		return t
	}
	decodeRelative(t, rec, now)
	return t
}

func decodeAbsolute(t *model.Timer, rec Record, now time.Time) {
	if rec.TargetEpoch != nil {
		target := epochToTime(*rec.TargetEpoch, now.Location())
		t.TargetEpoch = &target
	} else if legacy := parseInstant(rec.EndTime, now.Location()); legacy != nil {
		t.TargetEpoch = legacy
	}

	switch {
	case rec.TargetHHMM != nil:
		t.TargetHHMM = *rec.TargetHHMM
	case rec.PresetAbsolute != nil:
		t.TargetHHMM = *rec.PresetAbsolute
	case t.TargetEpoch != nil:
		t.TargetHHMM = t.TargetEpoch.In(now.Location()).Format("15:04")
	}

	// Pausing a wall-clock deadline is not meaningful; legacy data in that
	// state coerces to Stopped.
	if t.State == model.StatePaused {
		t.State = model.StateStopped
	}
}

func decodeRelative(t *model.Timer, rec Record, now time.Time) {
	if rec.InitialSeconds > 0 {
		t.InitialSeconds = rec.InitialSeconds
	} else if rec.PresetRelative != nil {
		t.InitialSeconds = timeinput.ParseRelativeText(*rec.PresetRelative)
	}

	switch {
	case rec.RemainingSeconds > 0:
		t.RemainingSeconds = float64(rec.RemainingSeconds)
	case rec.PausedRemaining != nil && *rec.PausedRemaining > 0:
		t.RemainingSeconds = *rec.PausedRemaining
	default:
		if legacy := parseInstant(rec.EndTime, now.Location()); legacy != nil {
			t.RemainingSeconds = math.Max(0, math.Floor(legacy.Sub(now).Seconds()))
		}
	}

	if t.InitialSeconds <= 0 {
		t.InitialSeconds = int(math.Max(1, math.Round(t.RemainingSeconds)))
	}

	if t.State == model.StateRunning {
		tick := now
		t.LastTick = &tick
	}
}

func parseInstant(value *string, loc *time.Location) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999"} {
		if parsed, err := time.ParseInLocation(layout, *value, loc); err == nil {
			return &parsed
		}
	}
	return nil
}

func epochToTime(epoch float64, loc *time.Location) time.Time {
	sec := int64(epoch)
	nsec := int64(math.Round((epoch - float64(sec)) * 1e9))
	return time.Unix(sec, nsec).In(loc)
}
