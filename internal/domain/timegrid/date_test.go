//go:build unit

package timegrid_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := timegrid.ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, timegrid.Date("2024-06-01"), d)

	for _, bad := range []string{"", "2024-6-1", "2024-02-30", "01/06/2024", "tomorrow"} {
		t.Run(bad, func(t *testing.T) {
			_, err := timegrid.ParseDate(bad)
			assert.ErrorIs(t, err, timegrid.ErrMalformedDate)
		})
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-06-01", 1, "2024-06-02"},
		{"2024-06-30", 1, "2024-07-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-06-01", 14, "2024-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got, err := timegrid.MustParseDate(tt.from).AddDays(tt.n)
			require.NoError(t, err)
			assert.Equal(t, timegrid.Date(tt.want), got)
		})
	}

	_, err := timegrid.Date("garbage").AddDays(1)
	assert.ErrorIs(t, err, timegrid.ErrMalformedDate)
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("venue", 2*60*60)
	mc := clock.NewMockClock(time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC).In(loc))
	assert.Equal(t, timegrid.Date("2024-06-01"), timegrid.Today(mc))
}

func TestHorizon(t *testing.T) {
	t.Run("from today spans the following days", func(t *testing.T) {
		h, err := timegrid.HorizonFrom("2024-06-01", 14)
		require.NoError(t, err)
		assert.Equal(t, timegrid.Date("2024-06-01"), h.Min())
		assert.Equal(t, timegrid.Date("2024-06-15"), h.Max())
		assert.Equal(t, 15, h.Days())
		assert.Equal(t, "2024-06-01..2024-06-15", h.String())
	})

	t.Run("single day", func(t *testing.T) {
		h, err := timegrid.NewHorizon("2024-06-01", "2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, 1, h.Days())
		assert.True(t, h.Contains("2024-06-01"))
		assert.False(t, h.Contains("2024-06-02"))
	})

	t.Run("contains is inclusive", func(t *testing.T) {
		h, err := timegrid.NewHorizon("2024-06-01", "2024-06-03")
		require.NoError(t, err)
		assert.False(t, h.Contains("2024-05-31"))
		assert.True(t, h.Contains("2024-06-01"))
		assert.True(t, h.Contains("2024-06-03"))
		assert.False(t, h.Contains("2024-06-04"))
	})

	t.Run("across daylight saving change counts calendar days", func(t *testing.T) {
		h, err := timegrid.NewHorizon("2024-03-30", "2024-04-01")
		require.NoError(t, err)
		assert.Equal(t, 3, h.Days())
		assert.Equal(t, timegrid.Date("2024-03-31"), h.DateAt(1))
	})

	t.Run("centuries wide window counts every day", func(t *testing.T) {
		h, err := timegrid.NewHorizon("2000-01-01", "2400-01-01")
		require.NoError(t, err)
		// one Gregorian 400-year cycle is 146097 days
		assert.Equal(t, 146098, h.Days())
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := timegrid.NewHorizon("2024-06-03", "2024-06-01")
		assert.ErrorIs(t, err, timegrid.ErrInvalidHorizon)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := timegrid.HorizonFrom("2024-06-01", -1)
		assert.ErrorIs(t, err, timegrid.ErrInvalidHorizon)
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var h timegrid.Horizon
		assert.True(t, h.IsZero())
		assert.Equal(t, 0, h.Days())
	})

	t.Run("equal", func(t *testing.T) {
		a, _ := timegrid.HorizonFrom("2024-06-01", 2)
		b, _ := timegrid.NewHorizon("2024-06-01", "2024-06-03")
		c, _ := timegrid.HorizonFrom("2024-06-02", 2)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}
