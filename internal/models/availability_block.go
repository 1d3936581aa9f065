package models

import "time"

// AvailabilityBlock is a stylist-set override for a contiguous range.
// Blocks for the same stylist may overlap; the resolver tolerates that.
type AvailabilityBlock struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index" json:"stylist_id"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Status string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
