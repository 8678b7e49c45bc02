package timegrid

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"venue-booking/internal/pkg/clock"
)

const DateLayout = "2006-01-02"

var (
	ErrMalformedDate  = errors.New("malformed date")
	ErrInvalidHorizon = errors.New("invalid horizon")
)

// Date is a venue-local calendar day in canonical YYYY-MM-DD form.
// The zero value is not a valid date.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today is the current venue-local date.
func Today(c clock.Clock) Date {
	return DateOf(c.Now())
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, string(d))
	}
	return t, nil
}

// AddDays moves n calendar days, crossing month and year boundaries.
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// Canonical dates order lexically.
func (d Date) Before(other Date) bool { return d < other }
func (d Date) After(other Date) bool { return d > other }

const secondsPerDay = 24 * 60 * 60

// Horizon is the inclusive [Min, Max] window the session is valid for.
type Horizon struct {
	min time.Time
	max time.Time
}

func NewHorizon(minDate, maxDate Date) (Horizon, error) {
	lo, err := minDate.Time()
	if err != nil {
		return Horizon{}, err
	}
	hi, err := maxDate.Time()
	if err != nil {
		return Horizon{}, err
	}
	if hi.Before(lo) {
		return Horizon{}, fmt.Errorf("%w: %s is after %s", ErrInvalidHorizon, minDate, maxDate)
	}
	return Horizon{min: lo, max: hi}, nil
}

// HorizonFrom spans today and the following days, as a date picker does.
func HorizonFrom(today Date, days int) (Horizon, error) {
	if days < 0 {
		return Horizon{}, fmt.Errorf("%w: negative length %d", ErrInvalidHorizon, days)
	}
	last, err := today.AddDays(days)
	if err != nil {
		return Horizon{}, err
	}
	return NewHorizon(today, last)
}

func (h Horizon) Min() Date { return DateOf(h.min) }
func (h Horizon) Max() Date { return DateOf(h.max) }

func (h Horizon) IsZero() bool {
	return h.min.IsZero() && h.max.IsZero()
}

// Days counts the dates in the window, both ends included.
func (h Horizon) Days() int {
	if h.IsZero() {
		return 0
	}
	// Unix seconds, not time.Duration, which saturates after ~292 years.
	return int((h.max.Unix()-h.min.Unix())/secondsPerDay) + 1
}

func (h Horizon) Contains(d Date) bool {
	return !d.Before(h.Min()) && !d.After(h.Max())
}

// DateAt returns the i-th date of the window.
func (h Horizon) DateAt(i int) Date {
	return DateOf(h.min.AddDate(0, 0, i))
}

func (h Horizon) Equal(other Horizon) bool {
	return h.min.Equal(other.min) && h.max.Equal(other.max)
}

func (h Horizon) String() string {
	return fmt.Sprintf("%s..%s", h.Min(), h.Max())
}

// ExpandDaily yields every date from Min to Max inclusive, ascending.
// Each range over the result starts over.
func (h Horizon) ExpandDaily() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		n := h.Days()
		for i := 0; i < n; i++ {
			if !yield(h.DateAt(i)) {
				return
			}
		}
	}
}
