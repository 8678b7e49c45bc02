package api

import (
	"net/http"

	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RefreshHandler struct {
	cmds commands.RefreshCommands
}

func NewRefreshHandler(cmds commands.RefreshCommands) *RefreshHandler {
	return &RefreshHandler{cmds: cmds}
}

// @Summary Refresh occupancy
// @Description Re-fetch bookings and events and rebuild the occupancy map
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /occupancy/refresh [post]
func (h *RefreshHandler) Refresh(c *gin.Context) {
	result, err := h.cmds.Refresh(c.Request.Context())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefreshResult(result))
}
