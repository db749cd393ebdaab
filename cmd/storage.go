package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/migrator"
	overrideRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/override"
	phonesRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/phones"
	scheduleRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
	overridesService "github.com/m04kA/SMC-BarberBooking/internal/service/overrides"
	phonesService "github.com/m04kA/SMC-BarberBooking/internal/service/phones"
	remindersService "github.com/m04kA/SMC-BarberBooking/internal/service/reminders"
	scheduleService "github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	setExtraSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
	"github.com/m04kA/SMC-BarberBooking/migrations"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// Объединения контрактов потребителей: postgres и memory реализации
// должны подходить всем сразу

type bookingRepository interface {
	bookingsService.BookingRepository
	remindersService.BookingRepository
	overridesService.BookingRepository
	createBookingUC.BookingRepository
	getAvailableSlotsUC.BookingRepository
	setExtraSlotsUC.BookingRepository
}

type overrideRepository interface {
	overridesService.OverrideRepository
	getAvailableSlotsUC.OverrideRepository
	setExtraSlotsUC.OverrideRepository
}

type phoneRepository interface {
	phonesService.PhoneRepository
	createBookingUC.PhoneRepository
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	bookings  bookingRepository
	overrides overrideRepository
	schedule  scheduleService.ScheduleRepository
	phones    phoneRepository
	txManager transactionManager
	pinger    interface{ PingContext(ctx context.Context) error }
	close     func() error
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("Using in-memory storage: data is lost on restart")
		store := memory.NewStore()
		return &storage{
			bookings:  store.Bookings(),
			overrides: store.Overrides(),
			schedule:  store.Schedule(),
			phones:    store.Phones(),
			txManager: store.TxManager(),
			pinger:    store,
			close:     func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	if cfg.AutoMigrate {
		mig, err := migrator.NewMigrator(db, migrations.FS, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		if err := mig.Up(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	// Все запросы идут через обёртку, m может быть nil
	wrapped := dbmetrics.Wrap(db, m)
	if m != nil {
		go wrapped.CollectPoolStats(15*time.Second, stopCh)
		log.Info("Database pool metrics collection started")
	}

	return &storage{
		bookings:  bookingRepo.NewRepository(wrapped),
		overrides: overrideRepo.NewRepository(wrapped),
		schedule:  scheduleRepo.NewRepository(wrapped),
		phones:    phonesRepo.NewRepository(wrapped),
		txManager: txmanager.NewTransactionManager(wrapped),
		pinger:    wrapped,
		close:     db.Close,
	}, nil
}
