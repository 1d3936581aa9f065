package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStylistByID(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	stylistID uint,
	serviceID uint,
) (*models.SalonService, error) {

	var svc models.SalonService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND stylist_id = ? AND active = ?", serviceID, stylistID, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ScheduleGormRepository) CountActiveServices(
	ctx context.Context,
	stylistID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SalonService{}).
		Where("stylist_id = ? AND active = ?", stylistID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Availability blocks
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAvailabilityBlocks(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND start_at < ? AND end_at > ?",
			stylistID, end, start,
		).
		Order("start_at ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) CreateAvailabilityBlock(
	ctx context.Context,
	block *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *ScheduleGormRepository) GetAvailabilityBlock(
	ctx context.Context,
	blockID uint,
	stylistID uint,
) (*models.AvailabilityBlock, error) {

	var block models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND stylist_id = ?", blockID, stylistID).
		First(&block).Error; err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *ScheduleGormRepository) UpdateAvailabilityBlockStatus(
	ctx context.Context,
	blockID uint,
	stylistID uint,
	status string,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.AvailabilityBlock{}).
		Where("id = ? AND stylist_id = ?", blockID, stylistID).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteAvailabilityBlock(
	ctx context.Context,
	blockID uint,
	stylistID uint,
) error {

	result := r.db.WithContext(ctx).
		Where("id = ? AND stylist_id = ?", blockID, stylistID).
		Delete(&models.AvailabilityBlock{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ScheduleGormRepository) ListReservations(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
	statuses []domain.ReservationStatus,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			stylistID, start, end,
		)

	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var reservations []models.Reservation
	if err := q.Order("scheduled_at ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// CreateReservation inserts a reservation. The partial unique index on
// (stylist_id, scheduled_at) rejects a second live reservation for the same
// slot; that violation surfaces as slot_unavailable.
func (r *ScheduleGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if httperr.IsConflictViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return err
	}
	return nil
}

func (r *ScheduleGormRepository) GetReservationForStylist(
	ctx context.Context,
	reservationID uint,
	stylistID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND stylist_id = ?", reservationID, stylistID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) GetReservationByReference(
	ctx context.Context,
	reference string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("reference = ?", reference).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) FindReservationBySlot(
	ctx context.Context,
	stylistID uint,
	clientID uint,
	scheduledAt time.Time,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND client_id = ? AND scheduled_at = ? AND status IN ?",
			stylistID, clientID, scheduledAt,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ScheduleGormRepository) ListElapsedConfirmed(
	ctx context.Context,
	before time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND scheduled_at < ?",
			string(domain.StatusConfirmed), before,
		).
		Order("scheduled_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
