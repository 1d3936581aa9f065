package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	c.JSON(200, stylist)
}

type UpdateMeRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Timezone string `json:"timezone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	if req.Name != "" {
		stylist.Name = req.Name
	}
	if req.Phone != "" {
		stylist.Phone = req.Phone
	}
	if req.Bio != "" {
		stylist.Bio = req.Bio
	}
	if req.Timezone != "" {
		if !timezone.IsValid(req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		stylist.Timezone = req.Timezone
	}

	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Could not save profile.")
		return
	}

	c.JSON(200, stylist)
}
