package booking

import (
	"context"
	"log"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// CompleteElapsed is the system transition confirmed -> completed once the
// scheduled time has passed. Runs on a cron schedule.
type CompleteElapsed struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events realtime.Publisher
}

func NewCompleteElapsed(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events realtime.Publisher,
) *CompleteElapsed {
	return &CompleteElapsed{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CompleteElapsed) Execute(ctx context.Context) (int, error) {
	now := timezone.Now()

	elapsed, err := uc.repo.ListElapsedConfirmed(ctx, now)
	if err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	completed := 0
	for i := range elapsed {
		res := &elapsed[i]

		if err := domain.CanComplete(
			domain.ReservationStatus(res.Status), res.ScheduledAt, now,
		); err != nil {
			continue
		}

		done := now
		res.Status = string(domain.StatusCompleted)
		res.CompletedAt = &done

		if err := uc.repo.UpdateReservation(ctx, res); err != nil {
			log.Printf("complete sweep: reservation %d: %v", res.ID, err)
			continue
		}

		completed++

		uc.audit.Dispatch(audit.Event{
			StylistID: res.StylistID,
			Action:    "reservation_completed",
			Entity:    "reservation",
			EntityID:  &res.ID,
		})
		uc.events.Publish(ctx, res.StylistID, realtime.Event{
			Table:  realtime.TableReservations,
			Action: "update",
		})
	}

	return completed, nil
}
