package api

import (
	"errors"
	"net/http"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/phone"
	"venue-booking/internal/pkg/ptr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

const reasonOutsideHorizon = "outside_horizon"

// abortWithEngineError maps engine and command errors to HTTP answers.
func abortWithEngineError(c *gin.Context, err error) {
	var (
		pastClosing  *reservation.PastClosingError
		insufficient *reservation.InsufficientDurationError
	)

	switch {
	case errors.As(err, &pastClosing):
		available := max(pastClosing.Closing.Hours()-pastClosing.Start.Hours(), 0)
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation runs past closing time",
			resdto.RejectionDetail{Reason: queries.ReasonPastClosing, AvailableHours: ptr.Of(available)})
	case errors.As(err, &insufficient):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Table is not free for the requested duration",
			resdto.RejectionDetail{Reason: queries.ReasonInsufficient, AvailableHours: ptr.Of(insufficient.Available)})
	case errs.Is(err, session.ErrTableBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Table is already booked at this hour",
			resdto.RejectionDetail{Reason: queries.ReasonBooked})
	case errs.Is(err, session.ErrOutsideHorizon):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Date is outside the booking horizon",
			resdto.RejectionDetail{Reason: reasonOutsideHorizon})
	case errs.Is(err, reservation.ErrPartyTooLarge):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Party does not fit the table", nil)
	case errs.Is(err, reservation.ErrOutsideOpeningHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Venue is closed at this hour", nil)
	case errs.Is(err, venue.ErrUnknownTable):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown table", nil)
	case errs.IsAny(err, timegrid.ErrMalformedTime, timegrid.ErrMalformedDate, reservation.ErrInvalidDuration,
		reservation.ErrInvalidPartySize, phone.ErrInvalidPhone, commands.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, session.ErrNotReady):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Availability is still loading", nil)
	case errs.Is(err, session.ErrRebuildSuperseded):
		httperr.AbortWithError(c, http.StatusConflict, err, "A newer refresh is in progress", nil)
	case errs.IsAny(err, session.ErrFetchFailed, commands.ErrPersistenceFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Record store is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
