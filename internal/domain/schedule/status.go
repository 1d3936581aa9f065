package schedule

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
)

// ===============================
// Reservation Status
// ===============================

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusDeclined  ReservationStatus = "declined"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// BlocksSlot reports whether a reservation in this status occupies its slot.
// Pending counts: the slot must stay blocked while a request is outstanding.
func BlocksSlot(s ReservationStatus) bool {
	return s == StatusPending || s == StatusConfirmed
}

// BlockingStatuses is the committed set used when fetching a stylist's day.
func BlockingStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed}
}

// ===============================
// Transitions
// ===============================
//
// pending   -> confirmed | declined   (stylist, one-time)
// pending   -> cancelled              (client, future only)
// confirmed -> cancelled              (client, future only)
// confirmed -> completed              (system, after the time passed)
//
// declined, cancelled and completed are terminal.

// CanDecide guards the stylist's confirm/decline. A repeat attempt on an
// already-decided reservation is already_processed.
func CanDecide(current ReservationStatus) error {
	if current != StatusPending {
		return httperr.ErrBusiness("already_processed")
	}
	return nil
}

// CanCancel guards the client cancel.
func CanCancel(current ReservationStatus, scheduledAt, now time.Time) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_transition")
	}
	if !scheduledAt.After(now) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete guards the system transition once the slot time has passed.
func CanComplete(current ReservationStatus, scheduledAt, now time.Time) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_transition")
	}
	if scheduledAt.After(now) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() ReservationStatus {
	return StatusPending
}
