package api

import (
	"net/http"

	"venue-booking/internal/domain/occupancy"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Venue layout
// @Description Tables, opening hours and the bookable horizon
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.VenueResponse
// @Router /venue [get]
func (h *AvailabilityHandler) GetVenue(c *gin.Context) {
	view, err := h.q.Venue(c.Request.Context())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Slot availability
// @Description Booked and free tables at one date and hour
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param hour query string true "Hour (HH:MM, half-hour aligned)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var query reqdto.SlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, hour, err := query.Parse()
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	slot, err := h.q.Slot(c.Request.Context(), date, hour)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailability(slot))
}

// @Summary Table margin probe
// @Description Whether a table can host a stay, and the longest free stay from the hour
// @Tags availability
// @Produce json
// @Param table path string true "Table ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param hour query string true "Hour (HH:MM)"
// @Param duration query number true "Hours, multiple of 0.5"
// @Success 200 {object} resdto.ProbeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability/tables/{table} [get]
func (h *AvailabilityHandler) ProbeTable(c *gin.Context) {
	var query reqdto.ProbeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, hour, err := query.Parse()
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	probe, err := h.q.Probe(c.Request.Context(), date, hour, occupancy.TableID(c.Param("table")), query.Duration)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTableProbe(probe))
}

// @Summary Day occupancy
// @Description Taken tables per slot for one date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /occupancy [get]
func (h *AvailabilityHandler) GetOccupancy(c *gin.Context) {
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := query.Parse()
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	day, err := h.q.Day(c.Request.Context(), date)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayOccupancy(day))
}
