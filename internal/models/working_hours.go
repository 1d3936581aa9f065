package models

import "time"

// WorkingHours holds one weekday row per stylist. A missing row means the
// default hours apply (09:00-18:00, open).
type WorkingHours struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index" json:"stylist_id"`

	Weekday int `json:"weekday"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
