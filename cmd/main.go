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

	cancelBookingHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/cancel_booking"
	createBlockedTimeHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/create_booking"
	deleteBlockedTimeHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/delete_blocked_time"
	getAvailableSlotsHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/get_user_bookings"
	getVendorBookingsHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/get_vendor_bookings"
	getVendorScheduleHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/get_vendor_schedule"
	listBlockedTimesHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/list_blocked_times"
	updateBookingStatusHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/update_booking_status"
	updateVendorScheduleHandler "github.com/mntdherm/CW-BookingService/internal/api/handlers/update_vendor_schedule"
	"github.com/mntdherm/CW-BookingService/internal/api/middleware"
	"github.com/mntdherm/CW-BookingService/internal/config"
	bookingRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	catalogServiceClient "github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
	bookingsService "github.com/mntdherm/CW-BookingService/internal/service/bookings"
	scheduleService "github.com/mntdherm/CW-BookingService/internal/service/schedule"
	createBookingUC "github.com/mntdherm/CW-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mntdherm/CW-BookingService/internal/usecase/get_available_slots"
	"github.com/mntdherm/CW-BookingService/pkg/dbmetrics"
	"github.com/mntdherm/CW-BookingService/pkg/logger"
	"github.com/mntdherm/CW-BookingService/pkg/metrics"
	"github.com/mntdherm/CW-BookingService/pkg/txmanager"
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

	log.Info("Starting CW-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		txMgr              *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		plainDB := dbmetrics.NewDB(db)
		bookingRepository = bookingRepo.NewRepository(plainDB)
		scheduleRepository = scheduleRepo.NewRepository(plainDB)
		txMgr = txmanager.NewTransactionManager(plainDB)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVendorBookings := getVendorBookingsHandler.NewHandler(bookingSvc, log)
	getVendorSchedule := getVendorScheduleHandler.NewHandler(scheduleSvc, log)
	updateVendorSchedule := updateVendorScheduleHandler.NewHandler(scheduleSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(scheduleSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(scheduleSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request-id для трассировки между сервисами
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

	// Получение доступных слотов на день
	api.HandleFunc("/vendors/{vendorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание вендора
	api.HandleFunc("/vendors/{vendorId}/schedule",
		getVendorSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования вендором (подтверждение, завершение)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление вендором ---
	// Календарь бронирований вендора
	protected.HandleFunc("/vendors/{vendorId}/bookings", getVendorBookings.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания
	protected.HandleFunc("/vendors/{vendorId}/schedule", updateVendorSchedule.Handle).Methods(http.MethodPut)

	// Блокировки времени
	protected.HandleFunc("/vendors/{vendorId}/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vendors/{vendorId}/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vendors/{vendorId}/blocked-times/{blockedTimeId}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

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
