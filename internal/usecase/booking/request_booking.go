package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
	ucschedule "github.com/glowdesk/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// INPUT
// ======================================================

type RequestBookingInput struct {
	StylistID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID *uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// RequestBooking is the only write path into a slot. The fresh re-resolve
// here is a UX pre-check; the partial unique index on
// (stylist_id, scheduled_at) is what actually prevents a double booking
// when two clients race for the same slot.
type RequestBooking struct {
	repo         domain.Repository
	day          *ucschedule.GetDaySchedule
	audit        *audit.Dispatcher
	events       realtime.Publisher
	writeTimeout time.Duration
}

func NewRequestBooking(
	repo domain.Repository,
	day *ucschedule.GetDaySchedule,
	audit *audit.Dispatcher,
	events realtime.Publisher,
	writeTimeout time.Duration,
) *RequestBooking {
	return &RequestBooking{
		repo:         repo,
		day:          day,
		audit:        audit,
		events:       events,
		writeTimeout: writeTimeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Reservation, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, in.StylistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(stylist.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// 1. Re-resolve against fresh data; never trust a client-cached status.
	slots, err := uc.day.Execute(ctx, in.StylistID, in.Date)
	if err != nil {
		return nil, err
	}

	var target *domain.Slot
	for i := range slots {
		if slots[i].Datetime.Equal(start) {
			target = &slots[i]
			break
		}
	}
	// a time off the generated grid books nothing
	if target == nil || target.Status != domain.SlotAvailable {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// 2. Service gate: a stylist with configured services requires a pick.
	count, err := uc.repo.CountActiveServices(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	var service *models.SalonService
	if in.ServiceID != nil {
		service, err = uc.repo.GetService(ctx, in.StylistID, *in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeServiceRequired)
		}
	} else if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeServiceRequired)
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	// 3. Insert pending under a bounded timeout.
	res := &models.Reservation{
		Reference:   uuid.NewString(),
		ClientID:    client.ID,
		StylistID:   in.StylistID,
		ScheduledAt: start,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}
	if service != nil {
		res.ServiceID = &service.ID
	}

	writeCtx, cancel := context.WithTimeout(ctx, uc.writeTimeout)
	defer cancel()

	if err := uc.repo.CreateReservation(writeCtx, res); err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeSlotUnavailable):
			uc.audit.Dispatch(audit.Event{
				StylistID: in.StylistID,
				Action:    "reservation_conflict",
				Entity:    "reservation",
				Metadata:  map[string]any{"scheduled_at": start},
			})
			return nil, err

		case errors.Is(err, context.DeadlineExceeded):
			// Outcome unknown: the write may have landed. Re-verify by
			// identifying fields instead of retrying blind, which could
			// duplicate a slow-but-successful insert.
			existing, ferr := uc.repo.FindReservationBySlot(ctx, in.StylistID, client.ID, start)
			if ferr == nil {
				res = existing
				break
			}
			return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)

		default:
			return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
		}
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: in.StylistID,
		Action:    "reservation_requested",
		Entity:    "reservation",
		EntityID:  &res.ID,
	})
	uc.events.Publish(ctx, in.StylistID, realtime.Event{
		Table:  realtime.TableReservations,
		Action: "insert",
	})

	return res, nil
}
