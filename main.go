// File: summitos/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"summitos/config"
	"summitos/cron"
	"summitos/database"
	tripsRepo "summitos/database/repository/trips"
	"summitos/handlers"
	"summitos/middleware"
	"summitos/routes"
	"summitos/services/booking"
	"summitos/services/calendar"
	"summitos/services/distance"
	"summitos/services/notification"
	"summitos/services/schedule"
	"summitos/services/tasks"
	"summitos/services/telemetry"
	"summitos/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitTelemetryCache()

	businessLoc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	hoursTable := schedule.DefaultHoursTable()
	if len(config.AppConfig.BusinessHours) > 0 {
		hoursTable = schedule.TableFromPayload(config.AppConfig.BusinessHours)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tripRepo := tripsRepo.NewMongoTripRepo()

	// external clients.
	resolver := distance.NewGoogleResolver(
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.GoogleFallbackAPIKey,
	)
	graphClient := calendar.NewGraphClient(
		config.AppConfig.GraphTenantID,
		config.AppConfig.GraphClientID,
		config.AppConfig.GraphClientSecret,
		config.AppConfig.GraphOrganizer,
		config.AppConfig.GraphStaffID,
		config.AppConfig.BusinessTimezone,
	)
	tessieClient := telemetry.NewTessieClient(
		config.AppConfig.TessieAPIKey,
		config.AppConfig.TessieVIN,
	)

	// services.
	smtpPort, err := strconv.Atoi(config.AppConfig.SMTPPort)
	if err != nil {
		smtpPort = 587
	}
	notificationService, err := notification.NewDefaultNotificationService(notification.SMTPConfig{
		Host:       config.AppConfig.SMTPHost,
		Port:       smtpPort,
		Username:   config.AppConfig.SMTPUser,
		Password:   config.AppConfig.SMTPPass,
		From:       config.AppConfig.SMTPFrom,
		AdminEmail: config.AppConfig.AdminEmail,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	trackingService := &telemetry.DefaultTrackingService{
		Provider:    tessieClient,
		CacheClient: utils.GetTelemetryCacheClient(),
		HomeLat:     config.AppConfig.HomeBaseLat,
		HomeLng:     config.AppConfig.HomeBaseLng,
	}

	taskQueue := tasks.NewQueue()
	defer taskQueue.Close()

	bookingService := &booking.DefaultBookingService{
		Resolver:        resolver,
		Calendar:        graphClient,
		StatusSvc:       graphClient,
		NotificationSvc: notificationService,
		Sessions:        booking.NewRedisSessionStore(),
		TripRepo:        tripRepo,
		Reminders:       taskQueue,
		Hours:           hoursTable,
		Location:        businessLoc,
		RoundTripFactor: config.AppConfig.RoundTripFactor,
		StopDetourMiles: config.AppConfig.StopDetourMiles,
	}

	// background worker (reminders, operator digest, outage snapshot refresh).
	cron.InitWorker(notificationService, graphClient, tripRepo, taskQueue)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, tripRepo)
	trackHandler := handlers.NewTrackHandler(trackingService)
	statusHandler := handlers.NewStatusHandler(graphClient, utils.GetSessionCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		InitiateQuote:    bookingHandler.InitiateQuote,
		SubmitDetails:    bookingHandler.SubmitDetails,
		ListSlots:        bookingHandler.ListSlots,
		ConfirmBooking:   bookingHandler.ConfirmBooking,
		CancelSession:    bookingHandler.CancelSession,
		GetSession:       bookingHandler.GetSession,
		GetBookingRecord: bookingHandler.GetBookingRecord,

		// Tracking endpoints.
		GetVehiclePosition: trackHandler.GetVehiclePosition,

		// Status endpoints.
		GetOutageStatus: statusHandler.GetOutageStatus,
		GetHours:        handlers.NewHoursHandler(hoursTable),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
