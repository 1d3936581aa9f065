package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public identifier clients use to manage a booking.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StylistID uint    `gorm:"index" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	ServiceID *uint         `json:"service_id"`
	Service   *SalonService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	ScheduledAt time.Time `gorm:"index" json:"scheduled_at"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	DecidedAt   *time.Time `json:"decided_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
