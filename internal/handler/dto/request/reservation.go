package request

import (
	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateReservationRequest struct {
	Date      string            `json:"date" binding:"required"`
	Hour      string            `json:"hour" binding:"required"`
	Table     occupancy.TableID `json:"table" binding:"required"`
	Duration  float64           `json:"duration" binding:"required,gt=0"`
	PartySize int               `json:"ppl" binding:"required,min=1"`
	Starters  []string          `json:"starters" binding:"omitempty,max=20,dive,max=64"`
	Phone     string            `json:"phone" binding:"max=32"`
	Address   string            `json:"address" binding:"max=256"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	var in commands.CreateReservationInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.CreateReservationInput{}, err
	}
	return in, nil
}

type SlotQuery struct {
	Date string `form:"date" binding:"required"`
	Hour string `form:"hour" binding:"required"`
}

func (q SlotQuery) Parse() (timegrid.Date, timegrid.Slot, error) {
	date, err := timegrid.ParseDate(q.Date)
	if err != nil {
		return "", 0, err
	}
	hour, err := timegrid.ParseHour(q.Hour)
	if err != nil {
		return "", 0, err
	}
	return date, hour, nil
}

type ProbeQuery struct {
	SlotQuery
	Duration float64 `form:"duration" binding:"required,gt=0"`
}

type DateQuery struct {
	Date string `form:"date" binding:"required"`
}

func (q DateQuery) Parse() (timegrid.Date, error) {
	return timegrid.ParseDate(q.Date)
}
