package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	ucschedule "github.com/glowdesk/salon-scheduler/internal/usecase/schedule"
)

// AvailabilityHandler serves the resolved slot grid. The public client view
// and the stylist's own view run the exact same resolution.
type AvailabilityHandler struct {
	day *ucschedule.GetDaySchedule
}

func NewAvailabilityHandler(day *ucschedule.GetDaySchedule) *AvailabilityHandler {
	return &AvailabilityHandler{day: day}
}

func (h *AvailabilityHandler) ForClient(c *gin.Context) {
	stylistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid stylist id.")
		return
	}

	h.respond(c, uint(stylistID))
}

func (h *AvailabilityHandler) ForStylist(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)
	h.respond(c, stylistID)
}

func (h *AvailabilityHandler) respond(c *gin.Context, stylistID uint) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	slots, err := h.day.Execute(c.Request.Context(), stylistID, dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}
