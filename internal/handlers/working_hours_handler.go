package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
)

type WorkingHoursHandler struct {
	db     *gorm.DB
	events realtime.Publisher
}

func NewWorkingHoursHandler(db *gorm.DB, events realtime.Publisher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, events: events}
}

type WorkingHoursEntry struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type UpdateWorkingHoursRequest struct {
	Hours []WorkingHoursEntry `json:"hours" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	h.db.
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC").
		Find(&hours)

	httpresp.List(c, hours)
}

// Update replaces the stylist's full weekly configuration. Last write wins;
// two stylist sessions editing at once is an accepted low-stakes race.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("stylist_id = ?", stylistID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Hours {
			wh := models.WorkingHours{
				StylistID: stylistID,
				Weekday:   entry.Weekday,
				StartTime: entry.StartTime,
				EndTime:   entry.EndTime,
				Active:    entry.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Could not save working hours.")
		return
	}

	h.events.Publish(c.Request.Context(), stylistID, realtime.Event{
		Table:  realtime.TableWorkingHours,
		Action: "update",
	})

	var hours []models.WorkingHours
	h.db.
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC").
		Find(&hours)

	httpresp.List(c, hours)
}
