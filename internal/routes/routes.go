package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/config"
	"github.com/glowdesk/salon-scheduler/internal/handlers"
	infraRepo "github.com/glowdesk/salon-scheduler/internal/infra/repository"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
	ucBooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
	ucSchedule "github.com/glowdesk/salon-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	dayScheduleUC := ucSchedule.NewGetDaySchedule(scheduleRepo, cfg.BufferMinutes)

	manageBlocksUC := ucSchedule.NewManageBlocks(scheduleRepo, auditDispatcher, hub)

	requestBookingUC := ucBooking.NewRequestBooking(
		scheduleRepo,
		dayScheduleUC,
		auditDispatcher,
		hub,
		time.Duration(cfg.WriteTimeoutSeconds)*time.Second,
	)

	decideReservationUC := ucBooking.NewDecideReservation(scheduleRepo, auditDispatcher, hub)
	cancelReservationUC := ucBooking.NewCancelReservation(scheduleRepo, auditDispatcher, hub)
	listByDateUC := ucBooking.NewListReservationsByDate(scheduleRepo)
	listByMonthUC := ucBooking.NewListReservationsByMonth(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, hub)
	blockHandler := handlers.NewBlockHandler(db, manageBlocksUC)

	availabilityHandler := handlers.NewAvailabilityHandler(dayScheduleUC)

	reservationHandler := handlers.NewReservationHandler(
		requestBookingUC,
		decideReservationUC,
		cancelReservationUC,
		listByDateUC,
		listByMonthUC,
	)

	scheduleWSHandler := handlers.NewScheduleWSHandler(hub)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/stylists", publicHandler.ListStylists)
			publicAPI.GET("/stylists/:id/services", serviceHandler.ListPublic)
			publicAPI.GET("/stylists/:id/availability", availabilityHandler.ForClient)
			publicAPI.POST("/stylists/:id/reservations", reservationHandler.Create)
			publicAPI.PATCH("/reservations/:reference/cancel", reservationHandler.CancelByClient)
			publicAPI.GET("/stylists/:id/schedule/ws", scheduleWSHandler.Stream)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE (STYLIST)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/availability-blocks", blockHandler.List)
			secured.POST("/me/availability-blocks", blockHandler.Create)
			secured.PATCH("/me/availability-blocks/:id", blockHandler.UpdateStatus)
			secured.DELETE("/me/availability-blocks/:id", blockHandler.Delete)

			// same resolver as the public view
			secured.GET("/me/schedule", availabilityHandler.ForStylist)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/me/reservations/:id/decline", reservationHandler.Decline)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
