package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

var (
	// ErrUnsupportedDriver возвращается для неизвестного драйвера БД
	ErrUnsupportedDriver = errors.New("migrations: unsupported driver")

	// ErrApply возвращается при ошибке применения схемы
	ErrApply = errors.New("migrations: failed to apply schema")
)

// Уникальный индекс (booking_date, slot) гарантирует, что слот на дату
// не может быть забронирован дважды, даже если блокировки обойдены.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id           BIGSERIAL PRIMARY KEY,
		batch_id     UUID NOT NULL,
		contact      VARCHAR(254) NOT NULL,
		booking_date DATE NOT NULL,
		slot         CHAR(5) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT reservations_date_slot_key UNIQUE (booking_date, slot)
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_batch_id_idx ON reservations (batch_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		batch_id     TEXT NOT NULL,
		contact      TEXT NOT NULL,
		booking_date TEXT NOT NULL,
		slot         TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (booking_date, slot)
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_batch_id_idx ON reservations (batch_id)`,
}

// Statements возвращает DDL для драйвера
func Statements(driver string) ([]string, error) {
	switch driver {
	case sqlbuilder.DriverPostgres:
		return postgresSchema, nil
	case sqlbuilder.DriverSQLite:
		return sqliteSchema, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Apply создает таблицы и индексы, если их ещё нет. Операция идемпотентна.
func Apply(ctx context.Context, db dbmetrics.DBExecutor, driver string) error {
	statements, err := Statements(driver)
	if err != nil {
		return err
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d: %v", ErrApply, i+1, err)
		}
	}
	return nil
}
