package reservation

import (
	"errors"
	"fmt"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
)

var (
	ErrPastClosing          = errors.New("reservation runs past closing time")
	ErrInsufficientDuration = errors.New("table is not free for the requested duration")
)

type PastClosingError struct {
	Start    timegrid.Slot
	Duration float64
	Closing  timegrid.Slot
}

func (e *PastClosingError) Error() string {
	return fmt.Sprintf("reservation at %s for %gh runs past closing at %s", e.Start, e.Duration, e.Closing)
}

func (e *PastClosingError) Is(target error) bool {
	return target == ErrPastClosing
}

// InsufficientDurationError carries the longest contiguous stay that is free.
type InsufficientDurationError struct {
	Available float64
	Requested float64
}

func (e *InsufficientDurationError) Error() string {
	return fmt.Sprintf("table is available only for %g hours, %g requested", e.Available, e.Requested)
}

func (e *InsufficientDurationError) Is(target error) bool {
	return target == ErrInsufficientDuration
}

// Validate checks closing time first, then walks forward from the slot after
// the start while the table stays free. The start slot itself is credited
// without a lookup. It returns the margin found, at least req.Duration.
func Validate(m *occupancy.Map, req Request, closing timegrid.Slot) (float64, error) {
	if closing.Hours()-req.Start.Hours() < req.Duration {
		return 0, &PastClosingError{Start: req.Start, Duration: req.Duration, Closing: closing}
	}

	margin := timegrid.SlotHours
	for slot := req.Start.Next(); margin < req.Duration; slot = slot.Next() {
		if !occupancy.IsFree(m, req.Date, slot, req.Table) {
			break
		}
		margin += timegrid.SlotHours
	}

	if margin < req.Duration {
		return 0, &InsufficientDurationError{Available: margin, Requested: req.Duration}
	}
	return margin, nil
}

// Margin measures the contiguous free time from start for table, capped at
// limit hours, using the same walk as Validate.
func Margin(m *occupancy.Map, date timegrid.Date, start timegrid.Slot, table occupancy.TableID, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	margin := timegrid.SlotHours
	for slot := start.Next(); margin < limit; slot = slot.Next() {
		if !occupancy.IsFree(m, date, slot, table) {
			break
		}
		margin += timegrid.SlotHours
	}
	return margin
}
