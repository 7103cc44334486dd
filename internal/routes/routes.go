package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/ridgelinesupply/pickup-scheduler/internal/audit"
	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	"github.com/ridgelinesupply/pickup-scheduler/internal/config"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/handlers"
	"github.com/ridgelinesupply/pickup-scheduler/internal/middleware"
	"github.com/ridgelinesupply/pickup-scheduler/internal/seed"
	"github.com/ridgelinesupply/pickup-scheduler/internal/staff"
	ucPickup "github.com/ridgelinesupply/pickup-scheduler/internal/usecase/pickup"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clk := clock.System()

	store := domain.NewStore(clk)
	if cfg.SeedDemoData {
		seed.Appointments(store, clk)
	}

	// One capacity source for the process lifetime, so availability does
	// not reshuffle between reads within a request.
	generator := domain.NewGenerator(domain.NewRandomCapacity(domain.DefaultSlotCapacity))
	generator.Blackout(cfg.BlackoutDates...)

	auditLogger := audit.New()
	auditDispatcher := audit.NewDispatcher(auditLogger)

	directory := staff.NewDirectory()
	if err := directory.Seed(cfg.StaffEmail, cfg.StaffName, cfg.StaffPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed staff directory")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucPickup.NewGetAvailability(generator)

	schedulePickupUC := ucPickup.NewSchedulePickup(
		store,
		auditDispatcher,
		clk,
	)

	listQueueUC := ucPickup.NewListQueue(store, clk)

	updateStatusUC := ucPickup.NewUpdateStatus(
		store,
		auditDispatcher,
	)

	updateStaffNotesUC := ucPickup.NewUpdateStaffNotes(
		store,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(directory, cfg)

	publicHandler := handlers.NewPublicHandler(
		getAvailabilityUC,
		schedulePickupUC,
		clk,
	)

	queueHandler := handlers.NewQueueHandler(
		store,
		listQueueUC,
		updateStatusUC,
		updateStaffNotesUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC (customer wizard)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/locations", publicHandler.ListLocations)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/availability/slots", publicHandler.DaySlots)
			publicAPI.POST(
				"/appointments",
				middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute),
				publicHandler.CreateAppointment,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF (dashboard)
		// ------------------------------
		staffAPI := api.Group("/staff")
		staffAPI.Use(middleware.AuthMiddleware(cfg))
		{
			staffAPI.GET("/queue", queueHandler.List)
			staffAPI.GET("/appointments", queueHandler.ListAll)
			staffAPI.PATCH("/appointments/:id/status", queueHandler.UpdateStatus)
			staffAPI.PATCH("/appointments/:id/notes", queueHandler.UpdateStaffNotes)
		}
	}
}
