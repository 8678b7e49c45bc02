//go:build unit || e2e

package builder

import (
	"fmt"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
)

type VenueBuilder struct {
	Name    string
	Opening timegrid.Slot
	Closing timegrid.Slot
	Tables  []venue.Table
}

// NewVenueBuilder describes a venue open 12:00-24:00 with eight four-seat tables.
func NewVenueBuilder() *VenueBuilder {
	b := &VenueBuilder{
		Name:    "Test Venue",
		Opening: 12,
		Closing: 24,
	}
	return b.WithTableCount(8, 4)
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) WithHours(opening, closing timegrid.Slot) *VenueBuilder {
	b.Opening = opening
	b.Closing = closing
	return b
}

func (b *VenueBuilder) WithTableCount(n, seats int) *VenueBuilder {
	b.Tables = make([]venue.Table, 0, n)
	for i := 1; i <= n; i++ {
		b.Tables = append(b.Tables, venue.Table{ID: occupancy.TableID(fmt.Sprint(i)), Seats: seats})
	}
	return b
}

func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.NewVenue(b.Name, b.Opening, b.Closing, b.Tables)
}

// MustBuild panics on an invalid layout. For fixtures only.
func (b *VenueBuilder) MustBuild() *venue.Venue {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}
