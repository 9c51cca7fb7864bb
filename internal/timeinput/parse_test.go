package timeinput

import (
	"errors"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
}

func TestParseAbsoluteLaterToday(t *testing.T) {
	now := fixedNow()
	spec, err := Parse("14:05", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Mode != ModeAbsolute {
		t.Fatalf("expected absolute mode, got %q", spec.Mode)
	}
	want := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	if !spec.Target.Equal(want) {
		t.Fatalf("expected target %v, got %v", want, spec.Target)
	}
	if spec.Normalized != "14:05" {
		t.Fatalf("expected normalized 14:05, got %q", spec.Normalized)
	}
}

func TestParseAbsoluteRollsToTomorrow(t *testing.T) {
	now := fixedNow()
	spec, err := Parse("08:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	if !spec.Target.Equal(want) {
		t.Fatalf("expected next-day target %v, got %v", want, spec.Target)
	}
}

func TestParseAbsoluteExactNowRollsForward(t *testing.T) {
	now := fixedNow()
	spec, err := Parse("09:30", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC)
	if !spec.Target.Equal(want) {
		t.Fatalf("expected rollover target %v, got %v", want, spec.Target)
	}
}

func TestParseAbsoluteOutOfRange(t *testing.T) {
	_, err := Parse("25:00", fixedNow())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeBadAbsolute {
		t.Fatalf("expected bad_absolute, got %v", err)
	}
	if parseErr.Message != "Absolute time must be HH:MM (00:00-23:59)." {
		t.Fatalf("unexpected message: %q", parseErr.Message)
	}
}

func TestParseRelativeColon(t *testing.T) {
	spec, err := Parse("5:30", fixedNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Mode != ModeRelative || spec.Seconds != 330 {
		t.Fatalf("expected 330 relative seconds, got %+v", spec)
	}
	if spec.Normalized != "5:30" {
		t.Fatalf("expected normalized 5:30, got %q", spec.Normalized)
	}
}

func TestParseRelativeThreeDigitMinutes(t *testing.T) {
	spec, err := Parse("120:30", fixedNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Seconds != 120*60+30 {
		t.Fatalf("expected 7230 seconds, got %d", spec.Seconds)
	}
}

func TestParseRelativeBadSeconds(t *testing.T) {
	_, err := Parse("5:75", fixedNow())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeBadRelative {
		t.Fatalf("expected bad_relative, got %v", err)
	}
}

func TestParseRelativeZero(t *testing.T) {
	_, err := Parse("0:00", fixedNow())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeNonPositive {
		t.Fatalf("expected non_positive, got %v", err)
	}
}

func TestParseBareMinutes(t *testing.T) {
	spec, err := Parse("90", fixedNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Mode != ModeRelative || spec.Seconds != 5400 {
		t.Fatalf("expected 5400 relative seconds, got %+v", spec)
	}
	if spec.Normalized != "90:00" {
		t.Fatalf("expected normalized 90:00, got %q", spec.Normalized)
	}
}

func TestParseZeroMinutes(t *testing.T) {
	_, err := Parse("0", fixedNow())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeNonPositive {
		t.Fatalf("expected non_positive, got %v", err)
	}
	if parseErr.Message != "Minutes must be greater than 0." {
		t.Fatalf("unexpected message: %q", parseErr.Message)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	_, err := Parse("   ", fixedNow())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input, got %v", err)
	}

	_, err = Parse("soon", fixedNow())
	if !errors.As(err, &parseErr) || parseErr.Code != ErrCodeUnknownFormat {
		t.Fatalf("expected unknown_format, got %v", err)
	}
	if parseErr.Message != "Invalid format. Use HH:MM, M:SS, or minutes only." {
		t.Fatalf("unexpected message: %q", parseErr.Message)
	}
}

func TestParseRelativeText(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5:30", 330},
		{" 0:45 ", 45},
		{"5:75", 0},
		{"garbage", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseRelativeText(tc.in); got != tc.want {
			t.Fatalf("ParseRelativeText(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatRelative(t *testing.T) {
	if got := FormatRelative(90); got != "1:30" {
		t.Fatalf("expected 1:30, got %q", got)
	}
	if got := FormatRelative(0); got != "0:00" {
		t.Fatalf("expected 0:00, got %q", got)
	}
	if got := FormatRelative(-5); got != "0:00" {
		t.Fatalf("expected clamp to 0:00, got %q", got)
	}
}
