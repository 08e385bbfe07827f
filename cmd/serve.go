package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	createReservationHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_available_slots"
	getBlockedSlotsHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_blocked_slots"
	getBookingConfigHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_booking_config"
	getDatesHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_dates"
	getReservationsHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_reservations"
	healthHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/health"
	"github.com/m04kA/SMC-TurfBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TurfBooking/internal/config"
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TurfBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/notifier"
	configService "github.com/m04kA/SMC-TurfBooking/internal/service/config"
	reservationsService "github.com/m04kA/SMC-TurfBooking/internal/service/reservations"
	commitReservationUC "github.com/m04kA/SMC-TurfBooking/internal/usecase/commit_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_available_slots"
	getBlockedSlotsUC "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_blocked_slots"
	listDatesUC "github.com/m04kA/SMC-TurfBooking/internal/usecase/list_dates"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
	"github.com/m04kA/SMC-TurfBooking/pkg/keylock"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
	"github.com/m04kA/SMC-TurfBooking/pkg/metrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/txmanager"
)

const msgRouteNotFound = "not found"

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-TurfBooking...")
	if configPath != "" {
		log.Info("Configuration loaded from %s", configPath)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных и применяем схему
	var poolStopCh <-chan struct{}
	if cfg.Metrics.Enabled {
		poolStopCh = stopMetricsCh
	}
	wrappedDB, err := openDatabase(context.Background(), cfg, metricsCollector, poolStopCh, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer wrappedDB.Unwrap().Close()
	log.Info("Successfully connected to database (%s)", describeDatabase(cfg))

	// Горизонт бронирования и режим контакта фиксируются при деплое
	window, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("invalid booking window: %w", err)
	}
	contactMode, err := domain.ParseContactMode(cfg.Booking.ContactMode)
	if err != nil {
		return err
	}
	contactValidator, err := validation.NewContactValidator(contactMode)
	if err != nil {
		return err
	}
	log.Info("Booking window: timezone=%s, horizon_days=%d, slots=%02d:00..%02d:00, contact_mode=%s",
		window.Location(), window.HorizonDays(), cfg.Booking.FirstSlotHour, cfg.Booking.LastSlotHour, contactValidator.Mode())

	// Инициализируем канал уведомлений
	dispatcher, err := notifier.New(notifierConfig(cfg), log)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}
	defer dispatcher.Close()
	log.Info("Notification driver: %s", dispatcher.Name())

	// Инициализируем репозитории и сервисы
	reservationRepository := reservationRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	dateLocks := keylock.New()

	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	configSvc := configService.NewService(window, contactMode, cfg.Notification.Driver)

	// Инициализируем use cases
	listDatesUseCase := listDatesUC.NewUseCase(window)
	getBlockedSlotsUseCase := getBlockedSlotsUC.NewUseCase(reservationRepository, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(getBlockedSlotsUseCase, window, log)
	commitReservationUseCase := commitReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		dateLocks,
		contactValidator,
		dispatcher,
		window,
		metricsCollector,
		log,
	).WithNotifyTimeout(cfg.Booking.NotifyTimeoutDuration())

	// Инициализируем handlers
	getDates := getDatesHandler.NewHandler(listDatesUseCase)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(getBlockedSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(commitReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	getBookingConfig := getBookingConfigHandler.NewHandler(configSvc)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Повтор POST с тем же Idempotency-Key получает прежний успешный ответ
	var createReservationHTTP http.Handler = http.HandlerFunc(createReservation.Handle)
	if ttl := cfg.Server.IdempotencyTTLDuration(); ttl > 0 {
		idempotencyStore := middleware.NewInMemoryIdempotencyStore(ttl)
		defer idempotencyStore.Stop()
		createReservationHTTP = middleware.Idempotency(idempotencyStore)(createReservationHTTP)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if timeout := cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(middleware.RequestTimeout(timeout))
	}
	// Recovery внутри таймаута: хендлер выполняется в отдельной горутине
	r.Use(middleware.Recovery(log))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Горизонт бронирования
	route(api, "/dates", http.HandlerFunc(getDates.Handle), http.MethodGet)

	// Занятые и свободные слоты на дату
	route(api, "/blockedSlots", http.HandlerFunc(getBlockedSlots.Handle), http.MethodGet)
	route(api, "/availableSlots", http.HandlerFunc(getAvailableSlots.Handle), http.MethodGet)

	// Бронирования
	route(api, "/reservations", createReservationHTTP, http.MethodPost)
	route(api, "/reservations", http.HandlerFunc(getReservations.Handle), http.MethodGet)

	// Настройки площадки
	route(api, "/config", http.HandlerFunc(getBookingConfig.Handle), http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		close(stopMetricsCh)
		return err
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// route регистрирует путь вместе с вариантом с завершающим слэшем
func route(r *mux.Router, path string, h http.Handler, method string) {
	r.Handle(path, h).Methods(method)
	r.Handle(path+"/", h).Methods(method)
}

func notifierConfig(cfg *config.Config) notifier.Config {
	n := cfg.Notification
	return notifier.Config{
		Driver: n.Driver,
		Email: notifier.EmailConfig{
			Host:     n.Email.Host,
			Port:     n.Email.Port,
			Username: n.Email.Username,
			Password: n.Email.Password,
			From:     n.Email.From,
			Bcc:      n.Email.Bcc,
			NoTLS:    n.Email.NoTLS,
		},
		WebhookURL:     n.Webhook.URL,
		WebhookToken:   n.Webhook.Token,
		WebhookTimeout: n.Webhook.TimeoutDuration(),
		KafkaBrokers:   n.Kafka.Brokers,
		KafkaTopic:     n.Kafka.Topic,
	}
}
