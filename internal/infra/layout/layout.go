package layout

import (
	"fmt"
	"os"
	"strconv"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/ptr"

	"gopkg.in/yaml.v3"
)

// File is the on-disk venue layout. Either Tables is listed explicitly or
// TableCount tables named 1..N are generated with DefaultSeats each.
type File struct {
	Name         string      `yaml:"name"`
	Opening      string      `yaml:"opening"`
	Closing      string      `yaml:"closing"`
	TableCount   int         `yaml:"table_count"`
	DefaultSeats int         `yaml:"default_seats"`
	Tables       []TableFile `yaml:"tables"`
}

type TableFile struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Seats *int   `yaml:"seats"`
}

func Load(path string) (*venue.Venue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading venue layout: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid venue layout %s: %w", path, err)
	}
	return v, nil
}

func Parse(data []byte) (*venue.Venue, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing venue layout: %w", err)
	}
	return f.Venue()
}

func (f File) Venue() (*venue.Venue, error) {
	opening, err := parseHourOr(f.Opening, "12:00")
	if err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}
	closing, err := parseHourOr(f.Closing, "24:00")
	if err != nil {
		return nil, fmt.Errorf("closing: %w", err)
	}

	var tables []venue.Table
	switch {
	case len(f.Tables) > 0:
		tables = make([]venue.Table, 0, len(f.Tables))
		for _, t := range f.Tables {
			seats := ptr.Or(t.Seats, f.DefaultSeats)
			tables = append(tables, venue.Table{ID: occupancy.TableID(t.ID), Label: t.Label, Seats: seats})
		}
	case f.TableCount > 0:
		tables = make([]venue.Table, 0, f.TableCount)
		for i := 1; i <= f.TableCount; i++ {
			tables = append(tables, venue.Table{ID: occupancy.TableID(strconv.Itoa(i)), Seats: f.DefaultSeats})
		}
	}

	return venue.NewVenue(f.Name, opening, closing, tables)
}

func parseHourOr(s, fallback string) (timegrid.Slot, error) {
	if s == "" {
		s = fallback
	}
	return timegrid.ParseHour(s)
}
