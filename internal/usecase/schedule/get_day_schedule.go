package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// GetDaySchedule resolves one stylist-day into the slot grid. Every caller
// (client booking view, stylist edit view, booking writer pre-check) goes
// through this one path so a slot can never carry two different verdicts.
type GetDaySchedule struct {
	repo          domain.Repository
	bufferMinutes int
}

func NewGetDaySchedule(repo domain.Repository, bufferMinutes int) *GetDaySchedule {
	return &GetDaySchedule{
		repo:          repo,
		bufferMinutes: bufferMinutes,
	}
}

func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	stylistID uint,
	dateStr string,
) ([]domain.Slot, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
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

	weekday := int(date.Weekday())

	day := domain.DefaultDayHours()
	wh, err := uc.repo.GetWorkingHours(ctx, stylistID, weekday)
	switch {
	case err == nil:
		day = domain.DayHoursFromModel(wh)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no row configured, default hours stand
	default:
		// store failure: report unknown, never available
		return domain.ResolveUnknown(domain.GenerateSlots(day, date)),
			httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	slotTimes := domain.GenerateSlots(day, date)
	if len(slotTimes) == 0 {
		return []domain.Slot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	blocks, err := uc.repo.ListAvailabilityBlocks(ctx, stylistID, dayStart, dayEnd)
	if err != nil {
		return domain.ResolveUnknown(slotTimes),
			httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	reservations, err := uc.repo.ListReservations(
		ctx,
		stylistID,
		dayStart,
		dayEnd,
		domain.BlockingStatuses(),
	)
	if err != nil {
		return domain.ResolveUnknown(slotTimes),
			httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	return domain.Resolve(domain.ResolveParams{
		Slots:         slotTimes,
		Blocks:        blocks,
		Reservations:  reservations,
		Now:           timezone.NowIn(stylist.Timezone),
		BufferMinutes: uc.bufferMinutes,
	}), nil
}
