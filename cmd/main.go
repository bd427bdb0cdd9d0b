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

	createReservationHandler "github.com/supasport/booking-service/internal/api/handlers/create_reservation"
	createVenueHandler "github.com/supasport/booking-service/internal/api/handlers/create_venue"
	deleteVenueHandler "github.com/supasport/booking-service/internal/api/handlers/delete_venue"
	getAvailableSlotsHandler "github.com/supasport/booking-service/internal/api/handlers/get_available_slots"
	getPaymentCodeHandler "github.com/supasport/booking-service/internal/api/handlers/get_payment_code"
	getUserReservationsHandler "github.com/supasport/booking-service/internal/api/handlers/get_user_reservations"
	getVenueHandler "github.com/supasport/booking-service/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/supasport/booking-service/internal/api/handlers/list_venues"
	updateVenueHandler "github.com/supasport/booking-service/internal/api/handlers/update_venue"
	uploadVenueImageHandler "github.com/supasport/booking-service/internal/api/handlers/upload_venue_image"
	"github.com/supasport/booking-service/internal/api/middleware"
	"github.com/supasport/booking-service/internal/config"
	reservationRepo "github.com/supasport/booking-service/internal/infra/storage/reservation"
	slotRepo "github.com/supasport/booking-service/internal/infra/storage/slot"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	fileStoreClient "github.com/supasport/booking-service/internal/integrations/filestore"
	reservationsService "github.com/supasport/booking-service/internal/service/reservations"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
	createReservationUC "github.com/supasport/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/supasport/booking-service/internal/usecase/get_available_slots"
	"github.com/supasport/booking-service/pkg/dbmetrics"
	"github.com/supasport/booking-service/pkg/logger"
	"github.com/supasport/booking-service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SupaSport booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент файлового хранилища изображений
	fileStore := fileStoreClient.NewClient(
		cfg.FileStore.URL,
		cfg.FileStore.Bucket,
		time.Duration(cfg.FileStore.Timeout)*time.Second,
		log,
	)
	log.Info("File store client initialized (url=%s, bucket=%s, timeout=%ds)",
		cfg.FileStore.URL, cfg.FileStore.Bucket, cfg.FileStore.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		venueRepository       *venueRepo.Repository
		slotRepository        *slotRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	venueSvc := venuesService.NewService(
		venueRepository,
		reservationRepository,
		fileStore,
		log,
	)
	reservationSvc := reservationsService.NewService(
		venueRepository,
		reservationRepository,
		slotRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		venueRepository,
		slotRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		venueRepository,
		slotRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	updateVenue := updateVenueHandler.NewHandler(venueSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venueSvc, log)
	uploadVenueImage := uploadVenueImageHandler.NewHandler(venueSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPaymentCode := getPaymentCodeHandler.NewHandler(reservationSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Расписание слотов площадки на день
	api.HandleFunc("/venues/{venueId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление площадками (для владельцев) ---
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/venues/{venueId}", updateVenue.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/venues/{venueId}/images", uploadVenueImage.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/venues/{venueId}/payment-code", getPaymentCode.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
