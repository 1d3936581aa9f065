package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/config"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Stylist{},
		&models.Client{},
		&models.SalonService{},
		&models.WorkingHours{},
		&models.AvailabilityBlock{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Partial unique indexes are not expressible as gorm tags. This index
	// is the double-booking guarantee: two concurrent writers for the same
	// slot cannot both hold a live reservation.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_stylist_slot
        ON reservations (stylist_id, scheduled_at)
        WHERE status IN ('pending', 'confirmed')
    `)

	db.Exec(`
        UPDATE stylists
        SET timezone = 'America/New_York'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
