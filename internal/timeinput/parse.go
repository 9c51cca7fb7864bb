package timeinput

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	ModeRelative Mode = "relative"
	ModeAbsolute Mode = "absolute"
)

type ErrorCode string

const (
	ErrCodeEmptyInput    ErrorCode = "empty_input"
	ErrCodeBadAbsolute   ErrorCode = "bad_absolute"
	ErrCodeBadRelative   ErrorCode = "bad_relative"
	ErrCodeNonPositive   ErrorCode = "non_positive"
	ErrCodeUnknownFormat ErrorCode = "unknown_format"
)

type ParseError struct {
	Code    ErrorCode
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

var (
	absoluteRE      = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	relativeColonRE = regexp.MustCompile(`^(\d{1,3}):(\d{1,2})$`)
	minutesOnlyRE   = regexp.MustCompile(`^\d+$`)
)

// Spec is the normalized result of parsing a time input. For ModeRelative
// only Seconds is set; for ModeAbsolute only Target. Normalized holds the
// display form (HH:MM or M:SS).
type Spec struct {
	Mode       Mode
	Seconds    int
	Target     time.Time
	Normalized string
}

// Parse resolves free-form time input against the given instant. Grammars are
// tried in order: HH:MM (absolute, two digits each), M:SS (relative), bare
// digits (relative whole minutes). An absolute target that would not land
// strictly after now rolls forward by one day.
func Parse(value string, now time.Time) (Spec, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Spec{}, &ParseError{Code: ErrCodeEmptyInput, Message: "Time input is required."}
	}

	if m := absoluteRE.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return Spec{}, &ParseError{Code: ErrCodeBadAbsolute, Message: "Absolute time must be HH:MM (00:00-23:59)."}
		}
		target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return Spec{
			Mode:       ModeAbsolute,
			Target:     target,
			Normalized: fmt.Sprintf("%02d:%02d", hour, minute),
		}, nil
	}

	if m := relativeColonRE.FindStringSubmatch(trimmed); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		if seconds > 59 {
			return Spec{}, &ParseError{Code: ErrCodeBadRelative, Message: "Relative time must be M:SS with 00-59 seconds."}
		}
		total := minutes*60 + seconds
		if total <= 0 {
			return Spec{}, &ParseError{Code: ErrCodeNonPositive, Message: "Relative time must be greater than 0."}
		}
		return Spec{
			Mode:       ModeRelative,
			Seconds:    total,
			Normalized: fmt.Sprintf("%d:%02d", minutes, seconds),
		}, nil
	}

	if minutesOnlyRE.MatchString(trimmed) {
		minutes, err := strconv.Atoi(trimmed)
		if err != nil || minutes <= 0 {
			return Spec{}, &ParseError{Code: ErrCodeNonPositive, Message: "Minutes must be greater than 0."}
		}
		return Spec{
			Mode:       ModeRelative,
			Seconds:    minutes * 60,
			Normalized: fmt.Sprintf("%d:00", minutes),
		}, nil
	}

	return Spec{}, &ParseError{Code: ErrCodeUnknownFormat, Message: "Invalid format. Use HH:MM, M:SS, or minutes only."}
}

// ParseRelativeText recovers a second count from a stored M:SS string. Used
// for legacy snapshot fields; malformed input yields 0 rather than an error.
func ParseRelativeText(value string) int {
	m := relativeColonRE.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds > 59 {
		return 0
	}
	total := minutes*60 + seconds
	if total < 0 {
		return 0
	}
	return total
}

// FormatRelative renders a second count in the M:SS input form.
func FormatRelative(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
