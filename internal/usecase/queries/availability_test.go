//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/session"
	"venue-booking/tests/common/builder"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	today   = timegrid.Date("2024-06-01")
	builtAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
)

func newView(t *testing.T, v *venue.Venue, m *occupancy.Map) session.View {
	t.Helper()
	h, err := timegrid.HorizonFrom(today, 14)
	require.NoError(t, err)
	return session.View{Map: m, Horizon: h, Venue: v, Generation: 3, BuiltAt: builtAt}
}

func expectRead(reader *queriesmock.MockOccupancyReader, view session.View) {
	reader.EXPECT().Read(gomock.Any()).DoAndReturn(func(fn func(session.View) error) error {
		return fn(view)
	})
}

func TestAvailabilityQueries_Venue(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOccupancyReader(ctrl)
	v := builder.NewVenueBuilder().WithTableCount(2, 4).MustBuild()
	h, err := timegrid.HorizonFrom(today, 14)
	require.NoError(t, err)

	reader.EXPECT().Venue().Return(v)
	reader.EXPECT().Ready().Return(true)
	reader.EXPECT().Horizon().Return(h)

	got, err := queries.NewAvailabilityQueries(reader).Venue(context.Background())
	require.NoError(t, err)

	want := &queries.VenueView{
		Name:    "Test Venue",
		Opening: 12,
		Closing: 24,
		Tables: []queries.TableView{
			{ID: "1", Label: "Table 1", Seats: 4},
			{ID: "2", Label: "Table 2", Seats: 4},
		},
		HorizonMin: "2024-06-01",
		HorizonMax: "2024-06-15",
		Ready:      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("venue mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailabilityQueries_Slot(t *testing.T) {
	v := builder.NewVenueBuilder().WithTableCount(3, 4).MustBuild()
	m := occupancy.NewMap()
	m.Mark(today, 18, 2, "2")

	tests := []struct {
		name    string
		date    timegrid.Date
		hour    timegrid.Slot
		want    *queries.SlotAvailability
		wantErr error
	}{
		{
			name: "one table booked",
			date: today,
			hour: 19,
			want: &queries.SlotAvailability{
				Date: today, Hour: 19,
				Booked:     []occupancy.TableID{"2"},
				Free:       []occupancy.TableID{"1", "3"},
				Generation: 3,
			},
		},
		{
			name: "nothing booked",
			date: today,
			hour: 20,
			want: &queries.SlotAvailability{
				Date: today, Hour: 20,
				Booked:     []occupancy.TableID{},
				Free:       []occupancy.TableID{"1", "2", "3"},
				Generation: 3,
			},
		},
		{
			name:    "outside horizon",
			date:    "2024-07-01",
			hour:    19,
			wantErr: session.ErrOutsideHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := queriesmock.NewMockOccupancyReader(ctrl)
			expectRead(reader, newView(t, v, m))

			got, err := queries.NewAvailabilityQueries(reader).Slot(context.Background(), tt.date, tt.hour)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("slot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAvailabilityQueries_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOccupancyReader(ctrl)
	reader.EXPECT().Read(gomock.Any()).Return(session.ErrNotReady)

	_, err := queries.NewAvailabilityQueries(reader).Slot(context.Background(), today, 18)
	assert.ErrorIs(t, err, session.ErrNotReady)
}

func TestAvailabilityQueries_Probe(t *testing.T) {
	v := builder.NewVenueBuilder().MustBuild()
	m := occupancy.NewMap()
	m.Mark(today, 18, 2, "5")
	m.Mark(today, 21, 1, "5")

	tests := []struct {
		name     string
		hour     timegrid.Slot
		table    occupancy.TableID
		duration float64
		want     *queries.TableProbe
		wantErr  error
	}{
		{
			name: "fits before the next booking", hour: 20, table: "5", duration: 1,
			want: &queries.TableProbe{Date: today, Hour: 20, Table: "5", Requested: 1, Margin: 1, Available: true},
		},
		{
			name: "too long for the gap", hour: 20, table: "5", duration: 2,
			want: &queries.TableProbe{Date: today, Hour: 20, Table: "5", Requested: 2, Margin: 1, Reason: queries.ReasonInsufficient},
		},
		{
			name: "start slot taken", hour: 18.5, table: "5", duration: 1,
			want: &queries.TableProbe{Date: today, Hour: 18.5, Table: "5", Requested: 1, Reason: queries.ReasonBooked},
		},
		{
			name: "runs past closing", hour: 23, table: "1", duration: 2,
			want: &queries.TableProbe{Date: today, Hour: 23, Table: "1", Requested: 2, Margin: 1, Reason: queries.ReasonPastClosing},
		},
		{
			name: "unknown table", hour: 20, table: "99", duration: 1,
			wantErr: venue.ErrUnknownTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := queriesmock.NewMockOccupancyReader(ctrl)
			expectRead(reader, newView(t, v, m))

			got, err := queries.NewAvailabilityQueries(reader).Probe(context.Background(), today, tt.hour, tt.table, tt.duration)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("probe mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAvailabilityQueries_ProbeRejectsBadDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOccupancyReader(ctrl)

	for _, d := range []float64{0, -1, 1.25} {
		_, err := queries.NewAvailabilityQueries(reader).Probe(context.Background(), today, 18, "1", d)
		assert.True(t, errs.Is(err, reservation.ErrInvalidDuration), "duration %v: got %v", d, err)
	}
}

func TestAvailabilityQueries_Day(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOccupancyReader(ctrl)
	v := builder.NewVenueBuilder().MustBuild()
	m := occupancy.NewMap()
	m.Mark(today, 18, 1, "2")
	m.Mark(today, 18.5, 0.5, "1")
	expectRead(reader, newView(t, v, m))

	got, err := queries.NewAvailabilityQueries(reader).Day(context.Background(), today)
	require.NoError(t, err)

	want := &queries.DayOccupancy{
		Date: today,
		Slots: []queries.SlotOccupancy{
			{Hour: 18, Tables: []occupancy.TableID{"2"}},
			{Hour: 18.5, Tables: []occupancy.TableID{"1", "2"}},
		},
		Generation: 3,
		BuiltAt:    builtAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("day mismatch (-want +got):\n%s", diff)
	}
}
