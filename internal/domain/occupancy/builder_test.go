//go:build unit

package occupancy_test

import (
	"slices"
	"testing"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizon(t *testing.T, from, to string) timegrid.Horizon {
	t.Helper()
	h, err := timegrid.NewHorizon(timegrid.Date(from), timegrid.Date(to))
	require.NoError(t, err)
	return h
}

func datePtr(s string) *timegrid.Date {
	d := timegrid.Date(s)
	return &d
}

func TestBuild(t *testing.T) {
	t.Run("booking occupies its slots only", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-15")
		bookings := []occupancy.BookingRecord{
			{Date: "2024-06-01", Start: 18, Duration: 2, Table: "5"},
		}

		m := occupancy.Build(bookings, nil, nil, h)

		assert.False(t, occupancy.IsFree(m, "2024-06-01", 18, "5"))
		assert.False(t, occupancy.IsFree(m, "2024-06-01", 18.5, "5"))
		assert.False(t, occupancy.IsFree(m, "2024-06-01", 19.5, "5"))
		assert.True(t, occupancy.IsFree(m, "2024-06-01", 20, "5"))
		assert.True(t, occupancy.IsFree(m, "2024-06-01", 17.5, "5"))
		assert.True(t, occupancy.IsFree(m, "2024-06-01", 18.5, "4"))
		assert.True(t, occupancy.IsFree(m, "2024-06-02", 18.5, "5"))
	})

	t.Run("daily event occupies every horizon date", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-03")
		repeating := []occupancy.EventRecord{
			{Start: 12, Duration: 1, Table: "3", Recurrence: occupancy.Daily{}},
		}

		m := occupancy.Build(nil, nil, repeating, h)

		for _, date := range []timegrid.Date{"2024-06-01", "2024-06-02", "2024-06-03"} {
			assert.False(t, occupancy.IsFree(m, date, 12, "3"), date)
			assert.False(t, occupancy.IsFree(m, date, 12.5, "3"), date)
			assert.True(t, occupancy.IsFree(m, date, 13, "3"), date)
		}
		assert.True(t, occupancy.IsFree(m, "2024-06-04", 12, "3"))
		assert.Equal(t, []timegrid.Date{"2024-06-01", "2024-06-02", "2024-06-03"}, m.Dates())
	})

	t.Run("daily event ignores its anchor date", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-02")
		repeating := []occupancy.EventRecord{
			{Date: datePtr("2024-01-01"), Start: 20, Duration: 0.5, Table: "1", Recurrence: occupancy.Daily{}},
		}

		m := occupancy.Build(nil, nil, repeating, h)

		assert.False(t, occupancy.IsFree(m, "2024-06-01", 20, "1"))
		assert.False(t, occupancy.IsFree(m, "2024-06-02", 20, "1"))
		assert.True(t, occupancy.IsFree(m, "2024-01-01", 20, "1"))
	})

	t.Run("one-off event uses its own date", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-03")
		current := []occupancy.EventRecord{
			{Date: datePtr("2024-06-02"), Start: 14, Duration: 1.5, Table: "2"},
		}

		m := occupancy.Build(nil, current, nil, h)

		assert.Equal(t, []timegrid.Date{"2024-06-02"}, m.Dates())
		assert.Equal(t, map[timegrid.Slot][]occupancy.TableID{
			14: {"2"}, 14.5: {"2"}, 15: {"2"},
		}, m.Day("2024-06-02"))
	})

	t.Run("one-off event without a date is skipped", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-03")
		current := []occupancy.EventRecord{
			{Start: 14, Duration: 1, Table: "2", Recurrence: occupancy.NoRecurrence{}},
		}

		m := occupancy.Build(nil, current, nil, h)

		assert.Empty(t, m.Dates())
	})

	t.Run("overlapping records are unioned", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-01")
		bookings := []occupancy.BookingRecord{
			{Date: "2024-06-01", Start: 18, Duration: 2, Table: "5"},
			{Date: "2024-06-01", Start: 19, Duration: 1, Table: "5"},
			{Date: "2024-06-01", Start: 19, Duration: 1, Table: "6"},
		}

		m := occupancy.Build(bookings, nil, nil, h)

		assert.Equal(t, []occupancy.TableID{"5", "6"}, m.Occupied("2024-06-01", 19))
		assert.Equal(t, []occupancy.TableID{"5"}, m.Occupied("2024-06-01", 18))
	})

	t.Run("result does not depend on record order", func(t *testing.T) {
		h := horizon(t, "2024-06-01", "2024-06-03")
		bookings := []occupancy.BookingRecord{
			{Date: "2024-06-01", Start: 18, Duration: 2, Table: "5"},
			{Date: "2024-06-02", Start: 12, Duration: 0.5, Table: "1"},
			{Date: "2024-06-03", Start: 22, Duration: 1.5, Table: "5"},
		}
		current := []occupancy.EventRecord{
			{Date: datePtr("2024-06-02"), Start: 13, Duration: 3, Table: "4"},
		}
		repeating := []occupancy.EventRecord{
			{Start: 12, Duration: 1, Table: "3", Recurrence: occupancy.Daily{}},
			{Start: 21, Duration: 1, Table: "2", Recurrence: occupancy.Daily{}},
		}

		forward := occupancy.Build(bookings, current, repeating, h)

		reversedBookings := slices.Clone(bookings)
		slices.Reverse(reversedBookings)
		reversedRepeating := slices.Clone(repeating)
		slices.Reverse(reversedRepeating)
		backward := occupancy.Build(reversedBookings, current, reversedRepeating, h)

		if diff := cmp.Diff(forward.Snapshot(), backward.Snapshot()); diff != "" {
			t.Errorf("snapshot mismatch (-forward +backward):\n%s", diff)
		}
	})

	t.Run("empty inputs build an empty map", func(t *testing.T) {
		m := occupancy.Build(nil, nil, nil, horizon(t, "2024-06-01", "2024-06-01"))
		require.NotNil(t, m)
		assert.Empty(t, m.Snapshot())
	})
}

func TestExpandDaily(t *testing.T) {
	t.Run("yields every date once in order", func(t *testing.T) {
		h := horizon(t, "2024-06-29", "2024-07-02")
		got := slices.Collect(occupancy.ExpandDaily(h))
		assert.Equal(t, []timegrid.Date{"2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}, got)
	})

	t.Run("count matches horizon length", func(t *testing.T) {
		h, err := timegrid.HorizonFrom("2024-12-25", 14)
		require.NoError(t, err)
		got := slices.Collect(occupancy.ExpandDaily(h))
		assert.Len(t, got, 15)
		assert.Equal(t, timegrid.Date("2025-01-08"), got[len(got)-1])
	})

	t.Run("can be ranged more than once", func(t *testing.T) {
		seq := occupancy.ExpandDaily(horizon(t, "2024-06-01", "2024-06-03"))
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("zero horizon yields nothing", func(t *testing.T) {
		assert.Empty(t, slices.Collect(occupancy.ExpandDaily(timegrid.Horizon{})))
	})
}

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		tag  string
		want occupancy.RecurrenceKind
	}{
		{"daily", occupancy.RecurrenceDaily},
		{" Daily ", occupancy.RecurrenceDaily},
		{"", occupancy.RecurrenceNone},
		{"false", occupancy.RecurrenceNone},
		{"weekly", occupancy.RecurrenceNone},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancy.ParseRecurrence(tt.tag).Kind())
		})
	}
}
