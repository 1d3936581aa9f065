package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/config"
	dbpkg "github.com/glowdesk/salon-scheduler/internal/db"
	infraRepo "github.com/glowdesk/salon-scheduler/internal/infra/repository"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
	"github.com/glowdesk/salon-scheduler/internal/routes"
	ucBooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	hub := realtime.NewHub(rdb)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, hub, cfg)

	// confirmed -> completed once the slot time has passed
	sweeper := ucBooking.NewCompleteElapsed(
		infraRepo.NewScheduleGormRepository(db),
		audit.NewDispatcher(audit.New(db)),
		hub,
	)

	c := cron.New()
	if _, err := c.AddFunc("@every 5m", func() {
		if n, err := sweeper.Execute(context.Background()); err != nil {
			log.Printf("complete sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("complete sweep: %d reservations completed", n)
		}
	}); err != nil {
		log.Fatalf("failed to schedule complete sweep: %v", err)
	}
	c.Start()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
