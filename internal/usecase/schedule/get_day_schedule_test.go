package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

// dayStubRepo covers the paths the schedule usecases touch; reservation
// writes are never reached from here.
type dayStubRepo struct {
	stylist      *models.Stylist
	workingHours map[int]*models.WorkingHours
	blocks       []models.AvailabilityBlock
	reservations []models.Reservation

	nextBlockID uint

	failWorkingHours bool
	failBlocks       bool
	failReservations bool
}

func newDayStubRepo() *dayStubRepo {
	return &dayStubRepo{
		stylist:      &models.Stylist{ID: 1, Name: "Ana", Timezone: "UTC"},
		workingHours: map[int]*models.WorkingHours{},
	}
}

func (s *dayStubRepo) GetStylistByID(_ context.Context, id uint) (*models.Stylist, error) {
	if s.stylist == nil || s.stylist.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.stylist, nil
}

func (s *dayStubRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	if s.failWorkingHours {
		return nil, gorm.ErrInvalidDB
	}
	wh, ok := s.workingHours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return wh, nil
}

func (s *dayStubRepo) ListAvailabilityBlocks(_ context.Context, _ uint, _, _ time.Time) ([]models.AvailabilityBlock, error) {
	if s.failBlocks {
		return nil, gorm.ErrInvalidDB
	}
	return s.blocks, nil
}

func (s *dayStubRepo) ListReservations(_ context.Context, _ uint, _, _ time.Time, _ []domain.ReservationStatus) ([]models.Reservation, error) {
	if s.failReservations {
		return nil, gorm.ErrInvalidDB
	}
	return s.reservations, nil
}

func (s *dayStubRepo) GetService(context.Context, uint, uint) (*models.SalonService, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) CountActiveServices(context.Context, uint) (int64, error) {
	return 0, nil
}

func (s *dayStubRepo) GetOrCreateClient(context.Context, string, string, string) (*models.Client, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) CreateAvailabilityBlock(_ context.Context, block *models.AvailabilityBlock) error {
	if s.failBlocks {
		return gorm.ErrInvalidDB
	}
	s.nextBlockID++
	block.ID = s.nextBlockID
	s.blocks = append(s.blocks, *block)
	return nil
}

func (s *dayStubRepo) GetAvailabilityBlock(_ context.Context, blockID, stylistID uint) (*models.AvailabilityBlock, error) {
	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			return &s.blocks[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) UpdateAvailabilityBlockStatus(_ context.Context, blockID, stylistID uint, status string) error {
	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			s.blocks[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *dayStubRepo) DeleteAvailabilityBlock(_ context.Context, blockID, stylistID uint) error {
	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *dayStubRepo) CreateReservation(context.Context, *models.Reservation) error {
	return gorm.ErrInvalidDB
}

func (s *dayStubRepo) GetReservationForStylist(context.Context, uint, uint) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) GetReservationByReference(context.Context, string) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) FindReservationBySlot(context.Context, uint, uint, time.Time) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *dayStubRepo) UpdateReservation(context.Context, *models.Reservation) error {
	return gorm.ErrInvalidDB
}

func (s *dayStubRepo) ListElapsedConfirmed(context.Context, time.Time) ([]models.Reservation, error) {
	return nil, nil
}

var _ domain.Repository = (*dayStubRepo)(nil)

func futureDateStr() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func futureAt(hm string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", futureDateStr()+" "+hm, time.UTC)
	return t
}

func TestGetDayScheduleDefaultHours(t *testing.T) {
	repo := newDayStubRepo()
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	// no working-hours row configured: the 09:00-18:00 default applies
	slots, err := uc.Execute(context.Background(), 1, futureDateStr())

	require.NoError(t, err)
	require.Len(t, slots, 18)
	for _, s := range slots {
		assert.Equal(t, domain.SlotAvailable, s.Status, "slot %s", s.Time)
	}
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)
}

func TestGetDayScheduleConfiguredHours(t *testing.T) {
	repo := newDayStubRepo()
	weekday := int(futureAt("00:00").Weekday())
	repo.workingHours[weekday] = &models.WorkingHours{
		Active: true, StartTime: "10:00", EndTime: "13:00",
	}
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	slots, err := uc.Execute(context.Background(), 1, futureDateStr())

	require.NoError(t, err)
	require.Len(t, slots, 6)
	assert.Equal(t, "10:00", slots[0].Time)
}

func TestGetDayScheduleClosedDay(t *testing.T) {
	repo := newDayStubRepo()
	weekday := int(futureAt("00:00").Weekday())
	repo.workingHours[weekday] = &models.WorkingHours{Active: false}
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	slots, err := uc.Execute(context.Background(), 1, futureDateStr())

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetDayScheduleBlocksAndReservations(t *testing.T) {
	repo := newDayStubRepo()
	repo.blocks = []models.AvailabilityBlock{
		{StartAt: futureAt("14:00"), EndAt: futureAt("15:00"), Status: domain.BlockBusy},
	}
	repo.reservations = []models.Reservation{
		{ScheduledAt: futureAt("11:00"), Status: string(domain.StatusPending)},
	}
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	slots, err := uc.Execute(context.Background(), 1, futureDateStr())
	require.NoError(t, err)

	byTime := map[string]domain.SlotStatus{}
	for _, s := range slots {
		byTime[s.Time] = s.Status
	}
	assert.Equal(t, domain.SlotBooked, byTime["11:00"])
	assert.Equal(t, domain.SlotBusy, byTime["14:00"])
	assert.Equal(t, domain.SlotBusy, byTime["14:30"])
	assert.Equal(t, domain.SlotAvailable, byTime["15:00"])
}

// A store failure must surface as unknown on every slot, never as available.
func TestGetDayScheduleStoreFailureIsUnknown(t *testing.T) {
	for name, setup := range map[string]func(*dayStubRepo){
		"working hours": func(r *dayStubRepo) { r.failWorkingHours = true },
		"blocks":        func(r *dayStubRepo) { r.failBlocks = true },
		"reservations":  func(r *dayStubRepo) { r.failReservations = true },
	} {
		t.Run(name, func(t *testing.T) {
			repo := newDayStubRepo()
			setup(repo)
			uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

			slots, err := uc.Execute(context.Background(), 1, futureDateStr())

			assert.True(t, httperr.IsBusiness(err, httperr.CodeStoreUnreachable))
			require.Len(t, slots, 18)
			for _, s := range slots {
				assert.Equal(t, domain.SlotUnknown, s.Status)
			}
		})
	}
}

func TestGetDayScheduleUnknownStylist(t *testing.T) {
	repo := newDayStubRepo()
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	_, err := uc.Execute(context.Background(), 99, futureDateStr())
	assert.True(t, httperr.IsBusiness(err, "stylist_not_found"))
}

func TestGetDayScheduleBadDate(t *testing.T) {
	repo := newDayStubRepo()
	uc := NewGetDaySchedule(repo, domain.DefaultBufferMinutes)

	_, err := uc.Execute(context.Background(), 1, "14-09-2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
