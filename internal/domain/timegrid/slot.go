package timegrid

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// SlotHours is the width of one slot.
const SlotHours = 0.5

var (
	ErrMalformedTime  = errors.New("malformed time")
	ErrMisalignedSlot = errors.New("slot is not aligned to a half hour")
)

// MalformedTimeError reports an hour string that is not a half-hour "HH:MM".
type MalformedTimeError struct {
	Input  string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: %s", e.Input, e.Reason)
}

func (e *MalformedTimeError) Is(target error) bool {
	return target == ErrMalformedTime
}

// Slot is an hour of the day with .0/.5 granularity (12.5 is 12:30).
type Slot float64

// ParseHour converts "HH:MM" into a Slot. Minutes must be 00 or 30; hour 24
// is accepted only as "24:00".
func ParseHour(s string) (Slot, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, &MalformedTimeError{Input: s, Reason: "missing ':' separator"}
	}
	if len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, &MalformedTimeError{Input: s, Reason: "expected HH:MM"}
	}
	if !allDigits(hourPart) || !allDigits(minutePart) {
		return 0, &MalformedTimeError{Input: s, Reason: "only digits are allowed around ':'"}
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 24 {
		return 0, &MalformedTimeError{Input: s, Reason: "hour out of range"}
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, &MalformedTimeError{Input: s, Reason: "minutes are not numeric"}
	}

	switch {
	case minute == 0:
		return Slot(hour), nil
	case minute == 30 && hour < 24:
		return Slot(hour) + SlotHours, nil
	default:
		return 0, &MalformedTimeError{Input: s, Reason: "minutes must be 00 or 30"}
	}
}

func allDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParseHour panics on malformed input. Intended for constants and tests.
func MustParseHour(s string) Slot {
	slot, err := ParseHour(s)
	if err != nil {
		panic(err)
	}
	return slot
}

// SlotFromNumber accepts a numeric hour such as 13.5.
func SlotFromNumber(f float64) (Slot, error) {
	if math.IsNaN(f) || f < 0 || f > 24 {
		return 0, fmt.Errorf("%w: %v", ErrMisalignedSlot, f)
	}
	if !IsHalfHourMultiple(f) {
		return 0, fmt.Errorf("%w: %v", ErrMisalignedSlot, f)
	}
	return Slot(f), nil
}

// IsHalfHourMultiple reports whether f is a whole number of slots.
func IsHalfHourMultiple(f float64) bool {
	steps := f / SlotHours
	return steps == math.Trunc(steps)
}

func (s Slot) Hours() float64 {
	return float64(s)
}

func (s Slot) Add(hours float64) Slot {
	return Slot(float64(s) + hours)
}

func (s Slot) Next() Slot {
	return s.Add(SlotHours)
}

// String renders the canonical "HH:MM" form.
func (s Slot) String() string {
	hour := int(math.Floor(float64(s)))
	minute := 0
	if float64(s)-float64(hour) >= SlotHours {
		minute = 30
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatHour renders a numeric hour such as 12.5 as "12:30".
func FormatHour(h float64) string {
	return Slot(h).String()
}

func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Slot) UnmarshalText(b []byte) error {
	parsed, err := ParseHour(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Slots yields [start, start+duration) in half-hour steps.
func Slots(start Slot, duration float64) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for i := 0; float64(i)*SlotHours < duration; i++ {
			if !yield(start.Add(float64(i) * SlotHours)) {
				return
			}
		}
	}
}
