package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockedPhonesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/blocked_phones"
	cancelBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_booking"
	getDateBookingsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_date_bookings"
	getDayHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_day"
	getPhoneBookingsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_phone_bookings"
	getWeeklyHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_weekly_hours"
	healthHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/health"
	phonePolicyHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/phone_policy"
	purgeBookingsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/purge_bookings"
	restoreBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/restore_booking"
	setExtraSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/set_extra_slots"
	updateDayHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_day"
	updateWeeklyHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_weekly_hours"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/throttle"
	"github.com/m04kA/SMC-BarberBooking/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
	overridesService "github.com/m04kA/SMC-BarberBooking/internal/service/overrides"
	phonesService "github.com/m04kA/SMC-BarberBooking/internal/service/phones"
	remindersService "github.com/m04kA/SMC-BarberBooking/internal/service/reminders"
	scheduleService "github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	setExtraSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/clock"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
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

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Invalid shop timezone: %v", err)
	}
	clk := clock.New(loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopMetricsCh := make(chan struct{})

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Хранилище: postgres или память процесса
	store, err := openStorage(startupCtx, cfg.Database, metricsCollector, log, stopMetricsCh)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Redis нужен только для ограничения частоты заявок
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(startupCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Connected to redis at %s", cfg.Redis.Address)
		}
	}

	var throttler createBookingUC.Throttler
	switch {
	case !cfg.Throttle.Enabled:
		log.Info("Submission throttling disabled")
	case rdb != nil:
		throttler = throttle.NewRedisLimiter(rdb, cfg.Throttle.KeyPrefix, cfg.Throttle.Limit, cfg.Throttle.Window())
		log.Info("Submission throttling via redis: limit=%d per %s", cfg.Throttle.Limit, cfg.Throttle.Window())
	default:
		throttler = throttle.NewLocalLimiter(cfg.Throttle.Limit, cfg.Throttle.Window())
		log.Info("Submission throttling in process: limit=%d per %s", cfg.Throttle.Limit, cfg.Throttle.Window())
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(store.schedule, clk, log)
	if err := scheduleSvc.EnsureDefaults(startupCtx); err != nil {
		log.Fatal("Failed to seed weekly hours: %v", err)
	}
	bookingSvc := bookingsService.NewService(store.bookings, store.overrides, store.txManager, metricsCollector, clk, log)
	overrideSvc := overridesService.NewService(store.overrides, store.bookings, store.txManager, clk, log)
	phoneSvc := phonesService.NewService(store.phones, clk, log)
	reminderSvc := remindersService.NewService(store.bookings, remindersService.NewLogNotifier(log), metricsCollector, clk, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleSvc,
		store.overrides,
		store.bookings,
		clk,
		log,
		cfg.Shop.MaxAdvanceDays,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		store.phones,
		getAvailableSlotsUseCase,
		throttler,
		store.txManager,
		metricsCollector,
		clk,
		log,
	)
	setExtraSlotsUseCase := setExtraSlotsUC.NewUseCase(
		scheduleSvc,
		store.overrides,
		store.bookings,
		store.txManager,
		clk,
		log,
	)

	// Фоновые задачи
	jobs := scheduler.New(loc, time.Duration(cfg.Shop.JobTimeout)*time.Second, log)
	if err := jobs.Register("purge_expired", cfg.Shop.PurgeCron, true, func(ctx context.Context) error {
		_, err := bookingSvc.PurgeExpired(ctx, cfg.Shop.PurgeGraceMinutes)
		return err
	}); err != nil {
		log.Fatal("Failed to register purge job: %v", err)
	}
	if err := jobs.Register("reminders", cfg.Shop.ReminderCron, false, func(ctx context.Context) error {
		_, err := reminderSvc.Sweep(ctx)
		return err
	}); err != nil {
		log.Fatal("Failed to register reminders job: %v", err)
	}
	jobs.Start()

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPhoneBookings := getPhoneBookingsHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	restoreBooking := restoreBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	purgeBookings := purgeBookingsHandler.NewHandler(bookingSvc, cfg.Shop.PurgeGraceMinutes, log)
	getWeeklyHours := getWeeklyHoursHandler.NewHandler(scheduleSvc, log)
	updateWeeklyHours := updateWeeklyHoursHandler.NewHandler(scheduleSvc, log)
	getDay := getDayHandler.NewHandler(overrideSvc, log)
	updateDay := updateDayHandler.NewHandler(overrideSvc, log)
	setExtraSlots := setExtraSlotsHandler.NewHandler(setExtraSlotsUseCase, log)
	blockedPhones := blockedPhonesHandler.NewHandler(phoneSvc, log)
	phonePolicy := phonePolicyHandler.NewHandler(phoneSvc, log)

	pingers := map[string]healthHandler.Pinger{"database": store.pinger}
	if rdb != nil {
		pingers["redis"] = redisPinger{client: rdb}
	}
	health := healthHandler.NewHandler(pingers, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.HandleLive).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.HandleReady).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиенты)
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Запись на слот
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Запись по короткому коду и её отмена
	api.HandleFunc("/bookings/{code}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{code}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// "Мои записи"
	api.HandleFunc("/phones/{phone}/bookings", getPhoneBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (панель барбера, авторизация на уровне прокси)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Записи ---
	admin.HandleFunc("/days/{date}/bookings", getDateBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/phones/{phone}/bookings", getPhoneBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/purge", purgeBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.HandleByID).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/restore", restoreBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/weekly-hours", getWeeklyHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/weekly-hours", updateWeeklyHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/days/{date}", getDay.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/days/{date}/blocked", updateDay.HandleBlocked).Methods(http.MethodPut)
	admin.HandleFunc("/days/{date}/blocked-times", updateDay.HandleToggleTime).Methods(http.MethodPost)
	admin.HandleFunc("/days/{date}/extra-slots", setExtraSlots.Handle).Methods(http.MethodPut)

	// --- Номера телефонов ---
	admin.HandleFunc("/blocked-phones", blockedPhones.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-phones", blockedPhones.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-phones/{phone}", blockedPhones.HandleUnblock).Methods(http.MethodDelete)
	admin.HandleFunc("/phone-policy", phonePolicy.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/phone-policy", phonePolicy.HandleUpdate).Methods(http.MethodPut)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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

	if err := jobs.Stop(shutdownCtx); err != nil {
		log.Error("Background jobs did not stop in time: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

// redisPinger приводит redis клиент к health.Pinger
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
