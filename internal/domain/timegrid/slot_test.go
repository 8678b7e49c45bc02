//go:build unit

package timegrid_test

import (
	"slices"
	"testing"

	"venue-booking/internal/domain/timegrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  timegrid.Slot
		errIs error
	}{
		{name: "whole hour", input: "12:00", want: 12},
		{name: "half hour", input: "12:30", want: 12.5},
		{name: "single digit hour", input: "9:30", want: 9.5},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "24:00", want: 24},
		{name: "surrounding spaces", input: " 18:00 ", want: 18},
		{name: "quarter past", input: "13:45", errIs: timegrid.ErrMalformedTime},
		{name: "quarter to", input: "13:15", errIs: timegrid.ErrMalformedTime},
		{name: "after end of day", input: "24:30", errIs: timegrid.ErrMalformedTime},
		{name: "hour out of range", input: "25:00", errIs: timegrid.ErrMalformedTime},
		{name: "no separator", input: "1200", errIs: timegrid.ErrMalformedTime},
		{name: "letters", input: "ab:cd", errIs: timegrid.ErrMalformedTime},
		{name: "empty", input: "", errIs: timegrid.ErrMalformedTime},
		{name: "single minute digit", input: "12:3", errIs: timegrid.ErrMalformedTime},
		{name: "signed minutes", input: "12:+0", errIs: timegrid.ErrMalformedTime},
		{name: "plus signed hour", input: "+9:30", errIs: timegrid.ErrMalformedTime},
		{name: "minus signed hour", input: "-0:00", errIs: timegrid.ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timegrid.ParseHour(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				var malformed *timegrid.MalformedTimeError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, tt.input, malformed.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotString(t *testing.T) {
	for _, input := range []string{"00:00", "09:30", "12:00", "18:30", "23:30", "24:00"} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, timegrid.MustParseHour(input).String())
		})
	}
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "12:30", timegrid.FormatHour(12.5))
	assert.Equal(t, "09:00", timegrid.FormatHour(9))

	h, err := timegrid.ParseHour(timegrid.FormatHour(13.5))
	require.NoError(t, err)
	assert.Equal(t, timegrid.Slot(13.5), h)
}

func TestSlotFromNumber(t *testing.T) {
	s, err := timegrid.SlotFromNumber(13.5)
	require.NoError(t, err)
	assert.Equal(t, timegrid.Slot(13.5), s)

	_, err = timegrid.SlotFromNumber(13.25)
	assert.ErrorIs(t, err, timegrid.ErrMisalignedSlot)

	_, err = timegrid.SlotFromNumber(-1)
	assert.ErrorIs(t, err, timegrid.ErrMisalignedSlot)
}

func TestSlots(t *testing.T) {
	t.Run("covers start inclusive and end exclusive", func(t *testing.T) {
		got := slices.Collect(timegrid.Slots(18, 2))
		assert.Equal(t, []timegrid.Slot{18, 18.5, 19, 19.5}, got)
	})

	t.Run("half hour duration yields one slot", func(t *testing.T) {
		got := slices.Collect(timegrid.Slots(23, 0.5))
		assert.Equal(t, []timegrid.Slot{23}, got)
	})

	t.Run("zero duration yields nothing", func(t *testing.T) {
		assert.Empty(t, slices.Collect(timegrid.Slots(12, 0)))
	})

	t.Run("long durations do not drift", func(t *testing.T) {
		got := slices.Collect(timegrid.Slots(0, 24))
		require.Len(t, got, 48)
		assert.Equal(t, timegrid.Slot(23.5), got[47])
	})

	t.Run("stops when consumer breaks", func(t *testing.T) {
		var seen []timegrid.Slot
		for s := range timegrid.Slots(12, 4) {
			seen = append(seen, s)
			if len(seen) == 2 {
				break
			}
		}
		assert.Len(t, seen, 2)
	})
}

func TestSlotText(t *testing.T) {
	var s timegrid.Slot
	require.NoError(t, s.UnmarshalText([]byte("20:30")))
	assert.Equal(t, timegrid.Slot(20.5), s)

	b, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "20:30", string(b))

	assert.ErrorIs(t, s.UnmarshalText([]byte("20:45")), timegrid.ErrMalformedTime)
}
