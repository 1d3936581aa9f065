package schedule

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Stylist --------
	GetStylistByID(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	// -------- Services --------
	GetService(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) (*models.SalonService, error)

	CountActiveServices(
		ctx context.Context,
		stylistID uint,
	) (int64, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		stylistID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Availability blocks --------
	ListAvailabilityBlocks(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.AvailabilityBlock, error)

	CreateAvailabilityBlock(
		ctx context.Context,
		block *models.AvailabilityBlock,
	) error

	GetAvailabilityBlock(
		ctx context.Context,
		blockID uint,
		stylistID uint,
	) (*models.AvailabilityBlock, error)

	UpdateAvailabilityBlockStatus(
		ctx context.Context,
		blockID uint,
		stylistID uint,
		status string,
	) error

	DeleteAvailabilityBlock(
		ctx context.Context,
		blockID uint,
		stylistID uint,
	) error

	// -------- Reservations --------
	ListReservations(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
		statuses []ReservationStatus,
	) ([]models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservationForStylist(
		ctx context.Context,
		reservationID uint,
		stylistID uint,
	) (*models.Reservation, error)

	GetReservationByReference(
		ctx context.Context,
		reference string,
	) (*models.Reservation, error)

	FindReservationBySlot(
		ctx context.Context,
		stylistID uint,
		clientID uint,
		scheduledAt time.Time,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListElapsedConfirmed(
		ctx context.Context,
		before time.Time,
	) ([]models.Reservation, error)
}
