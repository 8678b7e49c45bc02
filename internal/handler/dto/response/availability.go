package response

import (
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/usecase/queries"
)

type TableResponse struct {
	ID    occupancy.TableID `json:"id"`
	Label string            `json:"label"`
	Seats int               `json:"seats,omitempty"`
}

type HorizonResponse struct {
	Min timegrid.Date `json:"min"`
	Max timegrid.Date `json:"max"`
}

type VenueResponse struct {
	Name    string           `json:"name"`
	Opening timegrid.Slot    `json:"opening"`
	Closing timegrid.Slot    `json:"closing"`
	Tables  []TableResponse  `json:"tables"`
	Horizon *HorizonResponse `json:"horizon,omitempty"`
	Ready   bool             `json:"ready"`
}

func FromVenueView(v *queries.VenueView) *VenueResponse {
	res := &VenueResponse{
		Name:    v.Name,
		Opening: v.Opening,
		Closing: v.Closing,
		Tables:  make([]TableResponse, len(v.Tables)),
		Ready:   v.Ready,
	}
	for i, t := range v.Tables {
		res.Tables[i] = TableResponse{ID: t.ID, Label: t.Label, Seats: t.Seats}
	}
	if v.HorizonMin != "" {
		res.Horizon = &HorizonResponse{Min: v.HorizonMin, Max: v.HorizonMax}
	}
	return res
}

type AvailabilityResponse struct {
	Date       timegrid.Date       `json:"date"`
	Hour       timegrid.Slot       `json:"hour"`
	Booked     []occupancy.TableID `json:"booked"`
	Free       []occupancy.TableID `json:"free"`
	Generation uint64              `json:"generation"`
}

func FromSlotAvailability(a *queries.SlotAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:       a.Date,
		Hour:       a.Hour,
		Booked:     nonNil(a.Booked),
		Free:       nonNil(a.Free),
		Generation: a.Generation,
	}
}

type ProbeResponse struct {
	Date      timegrid.Date     `json:"date"`
	Hour      timegrid.Slot     `json:"hour"`
	Table     occupancy.TableID `json:"table"`
	Requested float64           `json:"requested"`
	Margin    float64           `json:"margin"`
	Available bool              `json:"available"`
	Reason    string            `json:"reason,omitempty"`
}

func FromTableProbe(p *queries.TableProbe) *ProbeResponse {
	return &ProbeResponse{
		Date:      p.Date,
		Hour:      p.Hour,
		Table:     p.Table,
		Requested: p.Requested,
		Margin:    p.Margin,
		Available: p.Available,
		Reason:    p.Reason,
	}
}

type SlotOccupancyResponse struct {
	Hour   timegrid.Slot       `json:"hour"`
	Tables []occupancy.TableID `json:"tables"`
}

type OccupancyResponse struct {
	Date       timegrid.Date           `json:"date"`
	Slots      []SlotOccupancyResponse `json:"slots"`
	Generation uint64                  `json:"generation"`
	BuiltAt    time.Time               `json:"builtAt"`
}

func FromDayOccupancy(d *queries.DayOccupancy) *OccupancyResponse {
	res := &OccupancyResponse{
		Date:       d.Date,
		Slots:      make([]SlotOccupancyResponse, len(d.Slots)),
		Generation: d.Generation,
		BuiltAt:    d.BuiltAt,
	}
	for i, s := range d.Slots {
		res.Slots[i] = SlotOccupancyResponse{Hour: s.Hour, Tables: nonNil(s.Tables)}
	}
	return res
}

func nonNil(ids []occupancy.TableID) []occupancy.TableID {
	if ids == nil {
		return []occupancy.TableID{}
	}
	return ids
}
