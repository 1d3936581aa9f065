package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

type PublicStylist struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Timezone string `json:"timezone"`
}

// ListStylists is the public directory clients browse before booking.
func (h *PublicHandler) ListStylists(c *gin.Context) {
	var stylists []models.Stylist
	h.db.
		Order("name ASC").
		Find(&stylists)

	out := make([]PublicStylist, 0, len(stylists))
	for _, s := range stylists {
		out = append(out, PublicStylist{
			ID:       s.ID,
			Name:     s.Name,
			Bio:      s.Bio,
			Timezone: s.Timezone,
		})
	}

	httpresp.List(c, out)
}
