package main

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TurfBooking/internal/config"
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/infra/storage/database"
	"github.com/m04kA/SMC-TurfBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-TurfBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
	"github.com/m04kA/SMC-TurfBooking/pkg/metrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

// openDatabase открывает пул, оборачивает его метриками и применяет схему
func openDatabase(
	ctx context.Context,
	cfg *config.Config,
	collector *metrics.Metrics,
	stopCh <-chan struct{},
	log *logger.Logger,
) (*dbmetrics.DB, error) {
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN(), database.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetimeDuration(),
	})
	if err != nil {
		return nil, err
	}

	var wrapped *dbmetrics.DB
	if collector != nil && stopCh != nil {
		wrapped = dbmetrics.WrapWithDefault(db, collector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, collector)
	}

	if err := migrations.Apply(ctx, wrapped, cfg.Database.Driver); err != nil {
		wrapped.Unwrap().Close()
		return nil, err
	}

	return wrapped, nil
}

// newWindow строит горизонт бронирования из секции [booking]
func newWindow(cfg *config.Config) (*domain.Window, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Booking.Timezone, err)
	}
	return domain.NewWindow(loc, cfg.Booking.HorizonDays, cfg.Booking.FirstSlotHour, cfg.Booking.LastSlotHour)
}

func describeDatabase(cfg *config.Config) string {
	if cfg.Database.Driver == sqlbuilder.DriverSQLite {
		return fmt.Sprintf("driver=sqlite, path=%s", cfg.Database.Path)
	}
	return fmt.Sprintf("driver=postgres, host=%s, port=%d, db=%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
}
