package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	ucschedule "github.com/glowdesk/salon-scheduler/internal/usecase/schedule"
)

type BlockHandler struct {
	db     *gorm.DB
	blocks *ucschedule.ManageBlocks
}

func NewBlockHandler(db *gorm.DB, blocks *ucschedule.ManageBlocks) *BlockHandler {
	return &BlockHandler{db: db, blocks: blocks}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Status  string    `json:"status" binding:"required"`
}

type UpdateBlockRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BlockHandler) List(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	fromStr := c.Query("from")
	toStr := c.Query("to")

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "from must be RFC3339.")
		return
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "to must be RFC3339.")
		return
	}

	var blocks []models.AvailabilityBlock
	h.db.
		Where(
			"stylist_id = ? AND start_at < ? AND end_at > ?",
			stylistID, to, from,
		).
		Order("start_at ASC").
		Find(&blocks)

	httpresp.List(c, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	block, err := h.blocks.Create(c.Request.Context(), ucschedule.CreateBlockInput{
		StylistID: stylistID,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Status:    req.Status,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, block)
}

func (h *BlockHandler) UpdateStatus(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid block id.")
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if err := h.blocks.UpdateStatus(
		c.Request.Context(), stylistID, uint(blockID), req.Status,
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(204)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid block id.")
		return
	}

	if err := h.blocks.Delete(c.Request.Context(), stylistID, uint(blockID)); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(204)
}
