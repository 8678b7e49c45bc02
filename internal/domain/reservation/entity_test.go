//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain(builder.NewVenueBuilder().MustBuild())
		require.NoError(t, err)

		assert.Equal(t, occupancy.TableID("5"), actual.Table)
		assert.Equal(t, 2.0, actual.Duration)
		assert.Equal(t, []string{"bruschetta"}, actual.Extras.Starters())
		assert.Equal(t, "+48 600 100 200", actual.Contact.Phone)
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "half hour", mutate: func(b *builder.ReservationBuilder) { b.WithDuration(0.5) }},
			{name: "zero", mutate: func(b *builder.ReservationBuilder) { b.WithDuration(0) }, errIs: reservation.ErrInvalidDuration},
			{name: "negative", mutate: func(b *builder.ReservationBuilder) { b.WithDuration(-1) }, errIs: reservation.ErrInvalidDuration},
			{name: "quarter hour", mutate: func(b *builder.ReservationBuilder) { b.WithDuration(1.25) }, errIs: reservation.ErrInvalidDuration},
		})
	})

	t.Run("party size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single guest", mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(1) }},
			{name: "full table", mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(4) }},
			{name: "nobody", mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(0) }, errIs: reservation.ErrInvalidPartySize},
			{name: "too many", mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(5) }, errIs: reservation.ErrPartyTooLarge},
		})
	})

	t.Run("table and hours validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "unknown table", mutate: func(b *builder.ReservationBuilder) { b.WithTable("99") }, errIs: venue.ErrUnknownTable},
			{name: "at opening", mutate: func(b *builder.ReservationBuilder) { b.WithStart(12) }},
			{name: "before opening", mutate: func(b *builder.ReservationBuilder) { b.WithStart(11.5) }, errIs: reservation.ErrOutsideOpeningHours},
			{name: "at closing", mutate: func(b *builder.ReservationBuilder) { b.WithStart(24) }, errIs: reservation.ErrOutsideOpeningHours},
		})
	})

	t.Run("duplicate starters are dropped", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithStarters("soup", "soup", "salad").
			BuildDomain(builder.NewVenueBuilder().MustBuild())
		require.NoError(t, err)
		assert.Equal(t, []string{"soup", "salad"}, actual.Extras.Starters())
	})
}

func TestExtras(t *testing.T) {
	t.Run("toggle removes exactly one and keeps the rest", func(t *testing.T) {
		e := reservation.NewExtras("soup", "salad", "bread")
		e = e.Toggle("soup")
		assert.Equal(t, []string{"salad", "bread"}, e.Starters())
	})

	t.Run("toggle in the middle keeps the tail", func(t *testing.T) {
		e := reservation.NewExtras("soup", "salad", "bread")
		e = e.Toggle("salad")
		assert.Equal(t, []string{"soup", "bread"}, e.Starters())
	})

	t.Run("toggle adds when absent", func(t *testing.T) {
		e := reservation.NewExtras("soup").Toggle("salad")
		assert.Equal(t, []string{"soup", "salad"}, e.Starters())
		assert.True(t, e.Contains("salad"))
	})

	t.Run("toggle twice is a no-op", func(t *testing.T) {
		e := reservation.NewExtras("soup", "salad")
		assert.Equal(t, e.Starters(), e.Toggle("bread").Toggle("bread").Starters())
	})

	t.Run("values are not shared", func(t *testing.T) {
		a := reservation.NewExtras("soup")
		b := a.Add("salad")
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 2, b.Len())
	})
}

func TestDecide(t *testing.T) {
	v := builder.NewVenueBuilder().MustBuild()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("accepted outcome carries the descriptor", func(t *testing.T) {
		req, err := builder.NewReservationBuilder().AsLateEvening().BuildDomain(v)
		require.NoError(t, err)
		id := uuid.New()

		out := reservation.Decide(occupancy.NewMap(), req, v.Closing(), id, now)

		require.True(t, out.Accepted())
		require.NoError(t, out.Err())
		assert.Equal(t, reservation.StatusAccepted, out.Status)
		assert.Equal(t, id, out.Descriptor.ID)
		assert.Equal(t, "22:00", out.Descriptor.Hour())
		assert.Equal(t, 1.5, out.Descriptor.Margin)
		assert.Equal(t, now, out.Descriptor.CreatedAt)
	})

	t.Run("rejected outcome carries the reason", func(t *testing.T) {
		req, err := builder.NewReservationBuilder().WithStart(23.5).WithDuration(1).BuildDomain(v)
		require.NoError(t, err)

		out := reservation.Decide(occupancy.NewMap(), req, v.Closing(), uuid.New(), now)

		assert.False(t, out.Accepted())
		assert.Equal(t, reservation.StatusRejected, out.Status)
		assert.True(t, out.Status.IsTerminal())
		assert.Nil(t, out.Descriptor)
		assert.ErrorIs(t, out.Err(), reservation.ErrPastClosing)
	})

	t.Run("folding the descriptor occupies its slots", func(t *testing.T) {
		d := builder.NewReservationBuilder().BuildDescriptor()
		m := occupancy.NewMap()

		d.MarkInto(m)

		assert.False(t, occupancy.IsFree(m, d.Date, 18, d.Table))
		assert.False(t, occupancy.IsFree(m, d.Date, 19.5, d.Table))
		assert.True(t, occupancy.IsFree(m, d.Date, 20, d.Table))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	v := builder.NewVenueBuilder().MustBuild()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain(v)

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
