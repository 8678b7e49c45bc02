package response

import (
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID         `json:"id"`
	StoreID   string            `json:"storeId"`
	Status    string            `json:"status"`
	Date      timegrid.Date     `json:"date"`
	Hour      timegrid.Slot     `json:"hour"`
	Table     occupancy.TableID `json:"table"`
	Duration  float64           `json:"duration"`
	PartySize int               `json:"ppl"`
	Starters  []string          `json:"starters"`
	Phone     string            `json:"phone,omitempty"`
	Address   string            `json:"address,omitempty"`
	Margin    float64           `json:"margin"`
	CreatedAt time.Time         `json:"createdAt"`
}

func FromCreateResult(r *commands.CreateReservationResult) *ReservationResponse {
	d := r.Reservation
	starters := d.Starters
	if starters == nil {
		starters = []string{}
	}
	return &ReservationResponse{
		ID:        d.ID,
		StoreID:   r.Ack.ID,
		Status:    reservation.StatusAccepted.String(),
		Date:      d.Date,
		Hour:      d.Start,
		Table:     d.Table,
		Duration:  d.Duration,
		PartySize: d.PartySize,
		Starters:  starters,
		Phone:     d.Contact.Phone,
		Address:   d.Contact.Address,
		Margin:    d.Margin,
		CreatedAt: d.CreatedAt,
	}
}

// RejectionDetail explains a 409/422 answer to a reservation attempt.
type RejectionDetail struct {
	Reason         string   `json:"reason"`
	AvailableHours *float64 `json:"availableHours,omitempty"`
}

type RefreshResponse struct {
	Generation uint64        `json:"generation"`
	HorizonMin timegrid.Date `json:"horizonMin"`
	HorizonMax timegrid.Date `json:"horizonMax"`
	Dates      int           `json:"dates"`
	BuiltAt    time.Time     `json:"builtAt"`
}

func FromRefreshResult(r *commands.RefreshResult) *RefreshResponse {
	return &RefreshResponse{
		Generation: r.Generation,
		HorizonMin: r.HorizonMin,
		HorizonMax: r.HorizonMax,
		Dates:      r.Dates,
		BuiltAt:    r.BuiltAt,
	}
}
