package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

// stubRepo is an in-memory Repository. CreateReservation enforces the same
// one-live-reservation-per-slot rule the partial unique index enforces in
// postgres, atomically under the mutex, so concurrent writers race exactly
// like they would against the real store.
type stubRepo struct {
	mu sync.Mutex

	stylist      *models.Stylist
	services     map[uint]*models.SalonService
	workingHours map[int]*models.WorkingHours
	blocks       []models.AvailabilityBlock
	reservations []*models.Reservation
	clients      map[string]*models.Client

	nextID uint

	failReservations bool
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		stylist:      &models.Stylist{ID: 1, Name: "Ana", Timezone: "UTC"},
		services:     map[uint]*models.SalonService{},
		workingHours: map[int]*models.WorkingHours{},
		clients:      map[string]*models.Client{},
		nextID:       100,
	}
}

func (s *stubRepo) addService(id uint, name string) {
	s.services[id] = &models.SalonService{
		ID: id, StylistID: s.stylist.ID, Name: name, DurationMin: 30, Active: true,
	}
}

func (s *stubRepo) addReservation(res models.Reservation) *models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	res.ID = s.nextID
	if res.StylistID == 0 {
		res.StylistID = s.stylist.ID
	}
	s.reservations = append(s.reservations, &res)
	return &res
}

func (s *stubRepo) GetStylistByID(_ context.Context, id uint) (*models.Stylist, error) {
	if s.stylist == nil || s.stylist.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.stylist, nil
}

func (s *stubRepo) GetService(_ context.Context, stylistID, serviceID uint) (*models.SalonService, error) {
	svc, ok := s.services[serviceID]
	if !ok || svc.StylistID != stylistID || !svc.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (s *stubRepo) CountActiveServices(_ context.Context, stylistID uint) (int64, error) {
	var count int64
	for _, svc := range s.services {
		if svc.StylistID == stylistID && svc.Active {
			count++
		}
	}
	return count, nil
}

func (s *stubRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[phone]; ok {
		return c, nil
	}
	s.nextID++
	c := &models.Client{ID: s.nextID, Name: name, Phone: phone, Email: email}
	s.clients[phone] = c
	return c, nil
}

func (s *stubRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := s.workingHours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return wh, nil
}

func (s *stubRepo) ListAvailabilityBlocks(_ context.Context, stylistID uint, start, end time.Time) ([]models.AvailabilityBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.AvailabilityBlock
	for _, b := range s.blocks {
		if b.StylistID == stylistID && b.StartAt.Before(end) && b.EndAt.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) CreateAvailabilityBlock(_ context.Context, block *models.AvailabilityBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	block.ID = s.nextID
	s.blocks = append(s.blocks, *block)
	return nil
}

func (s *stubRepo) GetAvailabilityBlock(_ context.Context, blockID, stylistID uint) (*models.AvailabilityBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			return &s.blocks[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateAvailabilityBlockStatus(_ context.Context, blockID, stylistID uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			s.blocks[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubRepo) DeleteAvailabilityBlock(_ context.Context, blockID, stylistID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].StylistID == stylistID {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubRepo) ListReservations(_ context.Context, stylistID uint, start, end time.Time, statuses []domain.ReservationStatus) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failReservations {
		return nil, gorm.ErrInvalidDB
	}

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.StylistID != stylistID {
			continue
		}
		if r.ScheduledAt.Before(start) || !r.ScheduledAt.Before(end) {
			continue
		}
		if len(statuses) > 0 && !statusIn(r.Status, statuses) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func statusIn(status string, statuses []domain.ReservationStatus) bool {
	for _, st := range statuses {
		if string(st) == status {
			return true
		}
	}
	return false
}

func (s *stubRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failReservations {
		return gorm.ErrInvalidDB
	}

	for _, existing := range s.reservations {
		if existing.StylistID == res.StylistID &&
			existing.ScheduledAt.Equal(res.ScheduledAt) &&
			domain.BlocksSlot(domain.ReservationStatus(existing.Status)) {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	s.nextID++
	res.ID = s.nextID
	s.reservations = append(s.reservations, res)
	return nil
}

func (s *stubRepo) GetReservationForStylist(_ context.Context, reservationID, stylistID uint) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.ID == reservationID && r.StylistID == stylistID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetReservationByReference(_ context.Context, reference string) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.Reference == reference {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindReservationBySlot(_ context.Context, stylistID, clientID uint, scheduledAt time.Time) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.StylistID == stylistID && r.ClientID == clientID &&
			r.ScheduledAt.Equal(scheduledAt) &&
			domain.BlocksSlot(domain.ReservationStatus(r.Status)) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reservations {
		if r.ID == res.ID {
			s.reservations[i] = res
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubRepo) ListElapsedConfirmed(_ context.Context, before time.Time) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.Status == string(domain.StatusConfirmed) && r.ScheduledAt.Before(before) {
			out = append(out, *r)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)
