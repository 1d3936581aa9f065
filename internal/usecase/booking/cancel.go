package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// CancelReservation is the client's action, by public reference, while the
// slot is still in the future. The phone check stands in for a login.
type CancelReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events realtime.Publisher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events realtime.Publisher,
) *CancelReservation {
	return &CancelReservation{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	reference string,
	clientPhone string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	if res.Client.Phone != clientPhone {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	stylist, err := uc.repo.GetStylistByID(ctx, res.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	now := timezone.NowIn(stylist.Timezone)
	if err := domain.CanCancel(domain.ReservationStatus(res.Status), res.ScheduledAt, now); err != nil {
		return nil, err
	}

	res.Status = string(domain.StatusCancelled)
	res.CancelledAt = &now

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: res.StylistID,
		Action:    "reservation_cancelled",
		Entity:    "reservation",
		EntityID:  &res.ID,
	})
	uc.events.Publish(ctx, res.StylistID, realtime.Event{
		Table:  realtime.TableReservations,
		Action: "update",
	})

	return res, nil
}
