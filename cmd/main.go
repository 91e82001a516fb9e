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

	createCabinHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/create_cabin"
	createClosedDateHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/create_closed_date"
	createPaymentHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/create_payment"
	createReservationHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/create_reservation"
	deleteClosedDateHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/delete_closed_date"
	getAvailabilityHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/get_availability"
	getCabinHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/get_cabin"
	getReservationHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/get_reservation"
	healthHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/health"
	listCabinsHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/list_cabins"
	listClosedDatesHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/list_closed_dates"
	listReservationsHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/list_reservations"
	paymentWebhookHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/payment_webhook"
	transitionHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/reservation_transition"
	updateCabinHandler "github.com/m04kA/BeachClub-ReservationService/internal/api/handlers/update_cabin"
	"github.com/m04kA/BeachClub-ReservationService/internal/api/middleware"
	"github.com/m04kA/BeachClub-ReservationService/internal/config"
	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/infra/migrator"
	cabinRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/cabin"
	closedDateRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/closeddate"
	paymentRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
	cabinsService "github.com/m04kA/BeachClub-ReservationService/internal/service/cabins"
	closedDatesService "github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates"
	reservationsService "github.com/m04kA/BeachClub-ReservationService/internal/service/reservations"
	createPaymentUC "github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_payment"
	createReservationUC "github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/BeachClub-ReservationService/internal/usecase/get_availability"
	processWebhookUC "github.com/m04kA/BeachClub-ReservationService/internal/usecase/process_webhook"
	"github.com/m04kA/BeachClub-ReservationService/migrations"
	"github.com/m04kA/BeachClub-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/BeachClub-ReservationService/pkg/logger"
	"github.com/m04kA/BeachClub-ReservationService/pkg/metrics"
	"github.com/m04kA/BeachClub-ReservationService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting BeachClub-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load club timezone %q: %v", cfg.Business.Timezone, err)
	}
	hours := domain.BusinessHours{
		Location:     location,
		OpeningHour:  cfg.Business.OpeningHour,
		ClosingHour:  cfg.Business.ClosingHour,
		SlotDuration: cfg.Business.SlotDuration(),
	}
	log.Info("Business hours: %02d:00-%02d:00 %s, %d slots",
		hours.OpeningHour, hours.ClosingHour, location, hours.SlotCount())

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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)
	cabinRepository := cabinRepo.NewRepository(wrappedDB)
	closedDateRepository := closedDateRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем клиента платежного шлюза
	gatewayClient := gateway.NewClient(
		cfg.Gateway.URL,
		cfg.Gateway.APIKey,
		cfg.Gateway.SecretKey,
		time.Duration(cfg.Gateway.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)", cfg.Gateway.URL, cfg.Gateway.Timeout)

	// Инициализируем сервисы
	cabinSvc := cabinsService.NewService(cabinRepository, log)
	closedDateSvc := closedDatesService.NewService(closedDateRepository, location, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		paymentRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		cabinRepository,
		closedDateRepository,
		txMgr,
		hours,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		cabinRepository,
		closedDateRepository,
		txMgr,
		hours,
		metricsCollector,
		log,
	)
	createPaymentUseCase := createPaymentUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		gatewayClient,
		cfg.Business.Currency,
		metricsCollector,
		log,
	)
	processWebhookUseCase := processWebhookUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		txMgr,
		cfg.Gateway.WebhookSecret,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	listCabins := listCabinsHandler.NewHandler(cabinSvc, true, log)
	listAllCabins := listCabinsHandler.NewHandler(cabinSvc, false, log)
	getCabin := getCabinHandler.NewHandler(cabinSvc, log)
	createCabin := createCabinHandler.NewHandler(cabinSvc, log)
	updateCabin := updateCabinHandler.NewHandler(cabinSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, location, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createPayment := createPaymentHandler.NewHandler(createPaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processWebhookUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, location, log)
	listClosedDates := listClosedDatesHandler.NewHandler(closedDateSvc, log)
	createClosedDate := createClosedDateHandler.NewHandler(closedDateSvc, log)
	deleteClosedDate := deleteClosedDateHandler.NewHandler(closedDateSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог кабин ---
	api.HandleFunc("/cabins", listCabins.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cabins/{cabinId:[0-9]+}", getCabin.Handle).Methods(http.MethodGet)

	// Сетка часовых слотов кабины на день
	api.HandleFunc("/cabins/{cabinId:[0-9]+}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Закрытые дни клуба
	api.HandleFunc("/closed-dates", listClosedDates.Handle).Methods(http.MethodGet)

	// --- Бронирование и оплата ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}/payments", createPayment.Handle).Methods(http.MethodPost)

	// Уведомления платежного шлюза (подпись проверяется в usecase)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret, middleware.RoleAdmin, log))

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)

	// Действия жизненного цикла: check-in, start, check-out, no-show, cancel
	for _, action := range []domain.ReservationAction{
		domain.ActionCheckIn,
		domain.ActionStart,
		domain.ActionCheckOut,
		domain.ActionNoShow,
		domain.ActionCancel,
	} {
		h := transitionHandler.NewHandler(reservationSvc, action, log)
		admin.HandleFunc("/reservations/{reservationId:[0-9]+}/"+string(action), h.Handle).Methods(http.MethodPatch)
	}

	// --- Кабины ---
	admin.HandleFunc("/cabins", listAllCabins.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/cabins", createCabin.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/cabins/{cabinId:[0-9]+}", updateCabin.Handle).Methods(http.MethodPut)

	// --- Закрытые дни ---
	admin.HandleFunc("/closed-dates", createClosedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/closed-dates/{closedDateId:[0-9]+}", deleteClosedDate.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
