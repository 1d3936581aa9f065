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

// DecideReservation is the stylist's one-time confirm or decline of a
// pending request. A repeat attempt on a decided reservation fails with
// already_processed.
type DecideReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events realtime.Publisher
}

func NewDecideReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events realtime.Publisher,
) *DecideReservation {
	return &DecideReservation{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *DecideReservation) Confirm(
	ctx context.Context,
	stylistID uint,
	reservationID uint,
) (*models.Reservation, error) {
	return uc.decide(ctx, stylistID, reservationID, domain.StatusConfirmed, "reservation_confirmed")
}

func (uc *DecideReservation) Decline(
	ctx context.Context,
	stylistID uint,
	reservationID uint,
) (*models.Reservation, error) {
	return uc.decide(ctx, stylistID, reservationID, domain.StatusDeclined, "reservation_declined")
}

func (uc *DecideReservation) decide(
	ctx context.Context,
	stylistID uint,
	reservationID uint,
	target domain.ReservationStatus,
	action string,
) (*models.Reservation, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, stylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	res, err := uc.repo.GetReservationForStylist(ctx, reservationID, stylistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	if err := domain.CanDecide(domain.ReservationStatus(res.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(stylist.Timezone)
	res.Status = string(target)
	res.DecidedAt = &now

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		ActorID:   &stylistID,
		Action:    action,
		Entity:    "reservation",
		EntityID:  &res.ID,
	})
	uc.events.Publish(ctx, stylistID, realtime.Event{
		Table:  realtime.TableReservations,
		Action: "update",
	})

	return res, nil
}
