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

	cancelBookingHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/check_availability"
	checkInHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/check_in_booking"
	checkOutHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/check_out_booking"
	createBookingHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/create_booking"
	createPackageHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/create_package"
	createServiceHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/create_post_session_service"
	createWheelHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/create_wheel"
	deleteWheelHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/delete_wheel"
	getAvailableSlotsHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_customer_bookings"
	getDailyBookingsHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_daily_bookings"
	getDailyScheduleHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_daily_schedule"
	getStudioConfigHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/get_studio_config"
	listPackagesHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/list_packages"
	listServicesHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/list_post_session_services"
	listWheelsHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/list_wheels"
	markPaidHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/mark_booking_paid"
	rescheduleBookingHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/update_booking_status"
	updatePackageHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/update_package"
	updateStudioConfigHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/update_studio_config"
	updateWheelHandler "github.com/imarastudio/IMS-BookingService/internal/api/handlers/update_wheel"
	"github.com/imarastudio/IMS-BookingService/internal/api/middleware"
	"github.com/imarastudio/IMS-BookingService/internal/config"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	claimRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/claim"
	extrasRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/extras"
	packageRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	rulesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/rules"
	configRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/studioconfig"
	wheelRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/wheel"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
	bookingsService "github.com/imarastudio/IMS-BookingService/internal/service/bookings"
	extrasService "github.com/imarastudio/IMS-BookingService/internal/service/extras"
	packagesService "github.com/imarastudio/IMS-BookingService/internal/service/packages"
	studioconfigService "github.com/imarastudio/IMS-BookingService/internal/service/studioconfig"
	wheelsService "github.com/imarastudio/IMS-BookingService/internal/service/wheels"
	cancelBookingUC "github.com/imarastudio/IMS-BookingService/internal/usecase/cancel_booking"
	checkAvailabilityUC "github.com/imarastudio/IMS-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/imarastudio/IMS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/imarastudio/IMS-BookingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/imarastudio/IMS-BookingService/internal/usecase/reschedule_booking"
	"github.com/imarastudio/IMS-BookingService/pkg/logger"
	"github.com/imarastudio/IMS-BookingService/pkg/metrics"
	"github.com/imarastudio/IMS-BookingService/pkg/txmanager"
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

	log.Info("Starting IMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	claimRepository := claimRepo.NewRepository(db)
	wheelRepository := wheelRepo.NewRepository(db)
	packageRepository := packageRepo.NewRepository(db)
	configRepository := configRepo.NewRepository(db)
	rulesRepository := rulesRepo.NewRepository(db)
	extrasRepository := extrasRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Строка конфигурации студии обязана существовать до первого запроса
	if err := configRepository.EnsureDefault(context.Background()); err != nil {
		log.Fatal("Failed to ensure studio config: %v", err)
	}

	// Инициализируем почтовый клиент и диспетчер уведомлений
	mailClient, err := mailer.NewClient(mailer.Config{
		Enabled:  cfg.SMTP.Enabled,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize mail client: %v", err)
	}
	dispatcher := mailer.NewDispatcher(mailClient, log)
	defer dispatcher.Close()
	if cfg.SMTP.Enabled {
		log.Info("Email notifications enabled (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	} else {
		log.Info("Email notifications disabled")
	}

	// Движок доступности: круги, буферы, дневной лимит
	checker := availability.NewChecker(
		bookingRepository,
		claimRepository,
		wheelRepository,
		&availability.RealTimeProvider{},
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, claimRepository, configRepository, dispatcher, log)
	wheelSvc := wheelsService.NewService(wheelRepository, log)
	packageSvc := packagesService.NewService(packageRepository, log)
	studioConfigSvc := studioconfigService.NewService(configRepository, log)
	extrasSvc := extrasService.NewService(extrasRepository, bookingRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		packageRepository,
		wheelRepository,
		claimRepository,
		configRepository,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		checker,
		packageRepository,
		configRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		configRepository,
		checker,
		dispatcher,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		configRepository,
		rulesRepository,
		checker,
		dispatcher,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		rulesRepository,
		dispatcher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	checkIn := checkInHandler.NewHandler(bookingSvc, log)
	checkOut := checkOutHandler.NewHandler(bookingSvc, log)
	markPaid := markPaidHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getDailySchedule := getDailyScheduleHandler.NewHandler(bookingSvc, log)
	getDailyBookings := getDailyBookingsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getStudioConfig := getStudioConfigHandler.NewHandler(studioConfigSvc, log)
	updateStudioConfig := updateStudioConfigHandler.NewHandler(studioConfigSvc, log)
	listWheels := listWheelsHandler.NewHandler(wheelSvc, log)
	createWheel := createWheelHandler.NewHandler(wheelSvc, log)
	updateWheel := updateWheelHandler.NewHandler(wheelSvc, log)
	deleteWheel := deleteWheelHandler.NewHandler(wheelSvc, log)
	listPackages := listPackagesHandler.NewHandler(packageSvc, log)
	createPackage := createPackageHandler.NewHandler(packageSvc, log)
	updatePackage := updatePackageHandler.NewHandler(packageSvc, log)
	createService := createServiceHandler.NewHandler(extrasSvc, log)
	listServices := listServicesHandler.NewHandler(extrasSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность и слоты ---
	api.HandleFunc("/packages/{packageId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getDailyBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/reference/{reference}", getBooking.HandleByReference).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/mark-paid", markPaid.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Послесессионные услуги ---
	api.HandleFunc("/bookings/{bookingId}/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/services", listServices.Handle).Methods(http.MethodGet)

	// --- Клиенты и расписание ---
	api.HandleFunc("/customers/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{date}", getDailySchedule.Handle).Methods(http.MethodGet)

	// --- Администрирование студии ---
	api.HandleFunc("/studio/config", getStudioConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studio/config", updateStudioConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wheels", listWheels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wheels", createWheel.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wheels/{wheelId}", updateWheel.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/wheels/{wheelId}", deleteWheel.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages", createPackage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}", updatePackage.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
