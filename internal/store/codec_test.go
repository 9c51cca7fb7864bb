package store

import (
	"testing"
	"time"

	"github.com/sandeepkv93/timerd/internal/model"
	"github.com/sandeepkv93/timerd/internal/timeinput"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestEncodeDecodeRelativeRoundTrip(t *testing.T) {
	now := fixedNow()
	spec, err := timeinput.Parse("5:00", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	timer := model.New("timer-1", "Tea", spec, now)
	timer.Advance(now.Add(30 * time.Second))
	timer.TogglePlayPause(now.Add(30 * time.Second))

	rec := EncodeTimer(timer)
	if rec.InputMode != "relative" || rec.State != "Paused" {
		t.Fatalf("unexpected record header: %+v", rec)
	}
	if rec.RemainingSeconds != 270 || rec.InitialSeconds != 300 {
		t.Fatalf("unexpected durations: %+v", rec)
	}

	decoded := DecodeTimer(rec, now)
	if decoded == nil {
		t.Fatalf("expected decodable record")
	}
	if decoded.State != model.StatePaused || decoded.RemainingSeconds != 270 || decoded.InitialSeconds != 300 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if err := decoded.Validate(); err != nil {
		t.Fatalf("decoded timer invalid: %v", err)
	}
}

func TestEncodeDecodeAbsoluteRoundTrip(t *testing.T) {
	now := fixedNow()
	spec, err := timeinput.Parse("14:05", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	timer := model.New("timer-1", "Standup", spec, now)

	rec := EncodeTimer(timer)
	if rec.TargetEpoch == nil || rec.TargetHHMM == nil || *rec.TargetHHMM != "14:05" {
		t.Fatalf("unexpected absolute record: %+v", rec)
	}

	decoded := DecodeTimer(rec, now)
	if decoded == nil || decoded.TargetEpoch == nil {
		t.Fatalf("expected armed absolute timer")
	}
	want := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	if !decoded.TargetEpoch.Equal(want) {
		t.Fatalf("expected target %v, got %v", want, decoded.TargetEpoch)
	}
	if decoded.TargetHHMM != "14:05" {
		t.Fatalf("expected hh:mm 14:05, got %q", decoded.TargetHHMM)
	}
}

func TestDecodeRunningResumesFromNow(t *testing.T) {
	now := fixedNow()
	rec := Record{
		TimerID: "timer-1", Label: "Tea", InputMode: "relative", State: "Running",
		RemainingSeconds: 120, InitialSeconds: 300,
	}
	decoded := DecodeTimer(rec, now)
	if decoded == nil || decoded.LastTick == nil || !decoded.LastTick.Equal(now) {
		t.Fatalf("running record must resume from now, got %+v", decoded)
	}
	if decoded.RemainingSeconds != 120 {
		t.Fatalf("offline wall time must not be consumed, got %v", decoded.RemainingSeconds)
	}
}

func TestDecodeLegacyEndTimeRelative(t *testing.T) {
	now := fixedNow()
	rec := Record{
		TimerID: "timer-1", Label: "Tea", InputMode: "relative", State: "Running",
		EndTime: strPtr("2025-03-10T09:31:30"),
	}
	decoded := DecodeTimer(rec, now)
	if decoded == nil {
		t.Fatalf("expected legacy record to decode")
	}
	if decoded.RemainingSeconds != 90 {
		t.Fatalf("expected 90s recovered from end_time, got %v", decoded.RemainingSeconds)
	}
	if decoded.InitialSeconds != 90 {
		t.Fatalf("expected initial derived from remaining, got %d", decoded.InitialSeconds)
	}
}

func TestDecodeLegacyPresetAndPausedRemaining(t *testing.T) {
	now := fixedNow()
	rec := Record{
		TimerID: "timer-1", Label: "Tea", InputMode: "relative", State: "Paused",
		PresetRelative:  strPtr("5:00"),
		PausedRemaining: f64Ptr(42.5),
	}
	decoded := DecodeTimer(rec, now)
	if decoded == nil {
		t.Fatalf("expected legacy record to decode")
	}
	if decoded.InitialSeconds != 300 || decoded.RemainingSeconds != 42.5 {
		t.Fatalf("unexpected recovery: %+v", decoded)
	}
}

func TestDecodeLegacyAbsoluteEndTime(t *testing.T) {
	now := fixedNow()
	rec := Record{
		TimerID: "timer-1", Label: "Standup", InputMode: "absolute", State: "Paused",
		EndTime:        strPtr("2025-03-10T14:05:00"),
		PresetAbsolute: strPtr("14:05"),
	}
	decoded := DecodeTimer(rec, now)
	if decoded == nil || decoded.TargetEpoch == nil {
		t.Fatalf("expected legacy absolute record to decode")
	}
	if decoded.TargetHHMM != "14:05" {
		t.Fatalf("expected preset_absolute fallback, got %q", decoded.TargetHHMM)
	}
	if decoded.State != model.StateStopped {
		t.Fatalf("paused absolute must coerce to Stopped, got %q", decoded.State)
	}
}

func TestDecodeDropsUnrecoverableRecords(t *testing.T) {
	now := fixedNow()

	if DecodeTimer(Record{TimerID: "x", Label: "  ", InputMode: "relative"}, now) != nil {
		t.Fatalf("blank label must drop the record")
	}
	if DecodeTimer(Record{TimerID: "x", Label: "Standup", InputMode: "absolute", State: "Running"}, now) != nil {
		t.Fatalf("absolute record without any target must drop")
	}
}

func TestDecodeCoercesInvalidFields(t *testing.T) {
	now := fixedNow()

	decoded := DecodeTimer(Record{
		TimerID: "x", Label: "Tea", InputMode: "sideways", State: "Melted",
		RemainingSeconds: 10,
	}, now)
	if decoded == nil {
		t.Fatalf("expected record to decode with coercions")
	}
	if decoded.Mode != model.ModeRelative || decoded.State != model.StateStopped {
		t.Fatalf("expected relative/Stopped coercion, got %+v", decoded)
	}

	decoded = DecodeTimer(Record{
		TimerID: "x", Label: "Tea", InputMode: "relative", State: "Finished",
		RemainingSeconds: 0, InitialSeconds: 60,
	}, now)
	if decoded.State != model.StateStopped {
		t.Fatalf("Finished without finished_at must coerce to Stopped, got %q", decoded.State)
	}

	decoded = DecodeTimer(Record{Label: "Tea", InputMode: "relative", RemainingSeconds: 5}, now)
	if decoded == nil || decoded.ID == "" {
		t.Fatalf("missing id must be regenerated")
	}
}
