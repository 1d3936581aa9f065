package schedule

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// DayHours is the effective opening window for one calendar day.
type DayHours struct {
	IsOpen bool
	Open   string
	Close  string
}

// DefaultDayHours applies when a stylist has no row for the weekday.
// Stylists opt into restricting, not into allowing.
func DefaultDayHours() DayHours {
	return DayHours{
		IsOpen: true,
		Open:   DefaultOpenTime,
		Close:  DefaultCloseTime,
	}
}

func DayHoursFromModel(wh *models.WorkingHours) DayHours {
	if wh == nil {
		return DefaultDayHours()
	}
	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return DayHours{IsOpen: false}
	}
	return DayHours{
		IsOpen: true,
		Open:   wh.StartTime,
		Close:  wh.EndTime,
	}
}

// atTimeOfDay anchors an "15:04" string on the given calendar date.
func atTimeOfDay(hm string, date time.Time) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
