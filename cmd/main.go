package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	blockedSlotsHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/blocked_slots"
	cancelBookingHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/create_booking"
	donationsHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/donations"
	endServiceDayHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/end_service_day"
	exportCSVHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/export_csv"
	getAvailableSlotsHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/get_booking"
	getServiceBookingsHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/get_service_bookings"
	milestonesHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/milestones"
	transitionStatusHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/transition_status"
	updateRepairsHandler "github.com/hopes-corner/HC-OpsService/internal/api/handlers/update_repairs"
	"github.com/hopes-corner/HC-OpsService/internal/api/middleware"
	"github.com/hopes-corner/HC-OpsService/internal/config"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	"github.com/hopes-corner/HC-OpsService/internal/infra/milestonestore"
	blockedSlotRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/booking"
	donationRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/donation"
	guestRosterClient "github.com/hopes-corner/HC-OpsService/internal/integrations/guestroster"
	blockedSlotsService "github.com/hopes-corner/HC-OpsService/internal/service/blockedslots"
	bookingsService "github.com/hopes-corner/HC-OpsService/internal/service/bookings"
	donationsService "github.com/hopes-corner/HC-OpsService/internal/service/donations"
	exportService "github.com/hopes-corner/HC-OpsService/internal/service/export"
	milestonesService "github.com/hopes-corner/HC-OpsService/internal/service/milestones"
	createBookingUC "github.com/hopes-corner/HC-OpsService/internal/usecase/create_booking"
	endServiceDayUC "github.com/hopes-corner/HC-OpsService/internal/usecase/end_service_day"
	getAvailableSlotsUC "github.com/hopes-corner/HC-OpsService/internal/usecase/get_available_slots"
	"github.com/hopes-corner/HC-OpsService/pkg/dbmetrics"
	"github.com/hopes-corner/HC-OpsService/pkg/logger"
	"github.com/hopes-corner/HC-OpsService/pkg/metrics"
	"github.com/hopes-corner/HC-OpsService/pkg/simpletxmanager"
	"github.com/hopes-corner/HC-OpsService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HC-OpsService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis holds the celebrated-milestones set
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Kafka event publisher, nop when disabled
	var publisher interface {
		Publish(ctx context.Context, event events.Event) error
	}
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Kafka disabled, events are discarded")
	}

	rosterClient := guestRosterClient.NewClient(
		cfg.GuestRoster.URL,
		time.Duration(cfg.GuestRoster.Timeout)*time.Second,
		log,
	)
	log.Info("Guest roster client initialized (url=%s, timeout=%ds)", cfg.GuestRoster.URL, cfg.GuestRoster.Timeout)

	var (
		bookingRepository     *bookingRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
		donationRepository    *donationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		donationRepository = donationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		donationRepository = donationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	milestoneStore := milestonestore.New(redisClient)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, publisher, log)
	blockedSlotSvc := blockedSlotsService.NewService(blockedSlotRepository, bookingRepository, log)
	donationSvc := donationsService.NewService(donationRepository, log)
	milestoneSvc := milestonesService.NewService(milestoneStore, log)
	exportSvc := exportService.NewService(bookingRepository, donationRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		rosterClient,
		publisher,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		log,
	)
	endServiceDayUseCase := endServiceDayUC.NewUseCase(
		bookingRepository,
		publisher,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getServiceBookings := getServiceBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	transitionStatus := transitionStatusHandler.NewHandler(bookingSvc, log)
	updateRepairs := updateRepairsHandler.NewHandler(bookingSvc, log)
	endServiceDay := endServiceDayHandler.NewHandler(endServiceDayUseCase, log)
	blockedSlots := blockedSlotsHandler.NewHandler(blockedSlotSvc, log)
	donations := donationsHandler.NewHandler(donationSvc, log)
	milestones := milestonesHandler.NewHandler(milestoneSvc, log)
	exportCSV := exportCSVHandler.NewHandler(exportSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Read-only routes
	api.HandleFunc("/services/{serviceType}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceType}/bookings", getServiceBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-slots", blockedSlots.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/donations", donations.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/milestones/{serviceType}/check", milestones.HandleCheck).Methods(http.MethodGet)
	api.HandleFunc("/milestones/{serviceType}/celebrated", milestones.HandleListCelebrated).Methods(http.MethodGet)
	api.HandleFunc("/export/{entity}.csv", exportCSV.Handle).Methods(http.MethodGet)

	// Mutating routes carry the X-Staff-ID header for the action log
	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff(log))

	staff.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/waitlist", createBooking.HandleWaitlist).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{id}/status", transitionStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{id}/repairs", updateRepairs.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/services/{serviceType}/end-day", endServiceDay.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blocked-slots", blockedSlots.HandleBlock).Methods(http.MethodPost)
	staff.HandleFunc("/blocked-slots", blockedSlots.HandleUnblock).Methods(http.MethodDelete)
	staff.HandleFunc("/donations", donations.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/donations/{id}", donations.HandleDelete).Methods(http.MethodDelete)
	staff.HandleFunc("/milestones/{serviceType}/celebrated", milestones.HandleMarkCelebrated).Methods(http.MethodPost)

	// CORS for the front-desk browser client
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.StaffIDHeader},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
