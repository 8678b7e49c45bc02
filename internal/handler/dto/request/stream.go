package request

import "venue-booking/internal/domain/occupancy"

const (
	StreamSelect        = "select"
	StreamToggleStarter = "toggle_starter"
)

// StreamMessage is what a client sends over the availability websocket.
type StreamMessage struct {
	Type     string            `json:"type"`
	Date     string            `json:"date,omitempty"`
	Hour     string            `json:"hour,omitempty"`
	Table    occupancy.TableID `json:"table,omitempty"`
	Duration float64           `json:"duration,omitempty"`
	Value    string            `json:"value,omitempty"`
}
