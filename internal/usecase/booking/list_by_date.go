package booking

import (
	"context"
	"time"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(repo domain.Repository) *ListReservationsByDate {
	return &ListReservationsByDate{repo: repo}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	stylistID uint,
	dateStr string,
) ([]models.Reservation, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, stylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(stylist.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	return uc.repo.ListReservations(ctx, stylistID, start, end, nil)
}
