package response

import (
	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
)

const (
	StreamSnapshot = "snapshot"
	StreamUpdate   = "update"
	StreamError    = "error"
)

// DraftResponse echoes the per-connection selection.
type DraftResponse struct {
	Date     timegrid.Date     `json:"date,omitempty"`
	Hour     *timegrid.Slot    `json:"hour,omitempty"`
	Table    occupancy.TableID `json:"table,omitempty"`
	Duration float64           `json:"duration,omitempty"`
	Starters []string          `json:"starters"`
}

type StreamMessage struct {
	Type       string                `json:"type"`
	Generation uint64                `json:"generation,omitempty"`
	Date       timegrid.Date         `json:"date,omitempty"`
	Draft      *DraftResponse        `json:"draft,omitempty"`
	Slot       *AvailabilityResponse `json:"slot,omitempty"`
	Probe      *ProbeResponse        `json:"probe,omitempty"`
	Error      string                `json:"error,omitempty"`
}
