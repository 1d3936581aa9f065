package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}

	var logs []models.AuditLog
	h.db.
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs)

	httpresp.List(c, logs)
}
