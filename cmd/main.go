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

	createBookingHandler "github.com/bettersystemsai/BSA-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/bettersystemsai/BSA-BookingService/internal/api/handlers/get_availability"
	getBookedTimesHandler "github.com/bettersystemsai/BSA-BookingService/internal/api/handlers/get_booked_times"
	getBookingHandler "github.com/bettersystemsai/BSA-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/bettersystemsai/BSA-BookingService/internal/api/handlers/get_day_bookings"
	"github.com/bettersystemsai/BSA-BookingService/internal/api/middleware"
	"github.com/bettersystemsai/BSA-BookingService/internal/config"
	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	bookingRepo "github.com/bettersystemsai/BSA-BookingService/internal/infra/storage/booking"
	"github.com/bettersystemsai/BSA-BookingService/internal/integrations/mailservice"
	bookingsService "github.com/bettersystemsai/BSA-BookingService/internal/service/bookings"
	createBookingUC "github.com/bettersystemsai/BSA-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/bettersystemsai/BSA-BookingService/internal/usecase/get_availability"
	"github.com/bettersystemsai/BSA-BookingService/pkg/dbmetrics"
	"github.com/bettersystemsai/BSA-BookingService/pkg/logger"
	"github.com/bettersystemsai/BSA-BookingService/pkg/metrics"
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

	log.Info("Starting BSA-BookingService...")
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

	// Инициализируем почтовый клиент
	var notifier createBookingUC.Notifier
	if cfg.Mail.Enabled {
		notifier = mailservice.NewClient(
			cfg.Mail.BaseURL,
			cfg.Mail.APIKey,
			cfg.Mail.From,
			cfg.Mail.AdminEmail,
			time.Duration(cfg.Mail.Timeout)*time.Second,
			log,
		)
		log.Info("Mail client initialized (base_url=%s, timeout=%ds)", cfg.Mail.BaseURL, cfg.Mail.Timeout)
	} else {
		notifier = noopNotifier{}
		log.Warn("Mail delivery disabled, booking confirmations will not be sent")
	}

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, notifier, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBookedTimes := getBookedTimesHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание бронирования
	api.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)

	// Каталог слотов на дату с флагами доступности
	api.HandleFunc("/bookings/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Занятые времена на дату
	api.HandleFunc("/bookings/slots/{date}", getBookedTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.AdminToken))

	// Список бронирований на дату
	admin.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

// noopNotifier используется при отключённой почте
type noopNotifier struct{}

func (noopNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	return nil
}
