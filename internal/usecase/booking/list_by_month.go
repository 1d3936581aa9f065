package booking

import (
	"context"
	"time"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(repo domain.Repository) *ListReservationsByMonth {
	return &ListReservationsByMonth{repo: repo}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	stylistID uint,
	year int,
	month int,
) ([]models.Reservation, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, stylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	loc := timezone.Location(stylist.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListReservations(ctx, stylistID, start, end, nil)
}
