package schedule

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// DefaultBufferMinutes protects against last-second bookings: a slot whose
// start is within the buffer from now is already past.
const DefaultBufferMinutes = 30

// ResolveParams carries everything a single resolution needs. The resolver
// has no clock of its own; callers pass Now so client and stylist views
// resolve identically.
type ResolveParams struct {
	Slots         []time.Time
	Blocks        []models.AvailabilityBlock
	Reservations  []models.Reservation
	Now           time.Time
	BufferMinutes int
}

// Resolve computes exactly one status per slot.
//
// Precedence, highest first:
//
//  1. past        — slot start <= now+buffer (boundary inclusive)
//  2. booked      — a pending/confirmed reservation scheduled exactly at the
//     slot start, matched on the minute, never as a range
//  3. unavailable — covered by an unavailable block
//  4. busy        — covered by a busy block; when unavailable and busy
//     blocks overlap a slot, the stricter unavailable wins
//  5. available   — the default inside working hours; an explicit available
//     block adds nothing the default does not already grant
//
// Overlapping or contradictory blocks never produce an error; the highest
// matching precedence is taken.
func Resolve(p ResolveParams) []Slot {
	buffer := p.BufferMinutes
	if buffer <= 0 {
		buffer = DefaultBufferMinutes
	}
	cutoff := p.Now.Add(time.Duration(buffer) * time.Minute)

	booked := make(map[int64]bool, len(p.Reservations))
	for _, res := range p.Reservations {
		if !BlocksSlot(ReservationStatus(res.Status)) {
			continue
		}
		booked[res.ScheduledAt.Truncate(time.Minute).Unix()] = true
	}

	slots := make([]Slot, 0, len(p.Slots))
	for _, start := range p.Slots {
		slots = append(slots, Slot{
			Time:     start.Format("15:04"),
			Datetime: start,
			Status:   resolveOne(start, cutoff, booked, p.Blocks),
		})
	}

	return slots
}

func resolveOne(
	start time.Time,
	cutoff time.Time,
	booked map[int64]bool,
	blocks []models.AvailabilityBlock,
) SlotStatus {

	if !start.After(cutoff) {
		return SlotPast
	}

	if booked[start.Truncate(time.Minute).Unix()] {
		return SlotBooked
	}

	busy := false
	for _, b := range blocks {
		// half-open: a block covers slots starting in [StartAt, EndAt)
		if start.Before(b.StartAt) || !start.Before(b.EndAt) {
			continue
		}
		switch b.Status {
		case BlockUnavailable:
			return SlotUnavailable
		case BlockBusy:
			busy = true
		}
	}
	if busy {
		return SlotBusy
	}

	return SlotAvailable
}

// ResolveUnknown marks every slot unknown. Used when the stores could not
// be read; never degrade a failed fetch to "all available".
func ResolveUnknown(slotTimes []time.Time) []Slot {
	slots := make([]Slot, 0, len(slotTimes))
	for _, start := range slotTimes {
		slots = append(slots, Slot{
			Time:     start.Format("15:04"),
			Datetime: start,
			Status:   SlotUnknown,
		})
	}
	return slots
}
