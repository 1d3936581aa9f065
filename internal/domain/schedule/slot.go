package schedule

import "time"

// SlotStatus is the single authoritative verdict for one slot.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBusy        SlotStatus = "busy"
	SlotUnavailable SlotStatus = "unavailable"
	SlotBooked      SlotStatus = "booked"
	SlotPast        SlotStatus = "past"

	// SlotUnknown is reported when the backing stores could not be read.
	// Defaulting to available on a failed fetch would let a client book
	// an unverified slot.
	SlotUnknown SlotStatus = "unknown"
)

type Slot struct {
	Time     string     `json:"time"`
	Datetime time.Time  `json:"datetime"`
	Status   SlotStatus `json:"status"`
}

// Block statuses a stylist can paint over a range.
const (
	BlockAvailable   = "available"
	BlockBusy        = "busy"
	BlockUnavailable = "unavailable"
)

func IsValidBlockStatus(s string) bool {
	switch s {
	case BlockAvailable, BlockBusy, BlockUnavailable:
		return true
	}
	return false
}
