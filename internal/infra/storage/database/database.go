package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

var (
	// ErrUnsupportedDriver возвращается для неизвестного драйвера БД
	ErrUnsupportedDriver = errors.New("database: unsupported driver")

	// ErrOpen возвращается при ошибке открытия соединения
	ErrOpen = errors.New("database: failed to open connection")

	// ErrPing возвращается, если БД недоступна
	ErrPing = errors.New("database: ping failed")
)

// sqlite ждёт освобождения файла вместо немедленного SQLITE_BUSY
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

// Options параметры пула соединений
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open открывает пул соединений и проверяет доступность БД
func Open(ctx context.Context, driver, dsn string, opts Options) (*sql.DB, error) {
	if !sqlbuilder.IsSupported(driver) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	if driver == sqlbuilder.DriverSQLite {
		dsn = withSQLitePragmas(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	switch driver {
	case sqlbuilder.DriverSQLite:
		// один писатель: sqlite сериализует записи на уровне файла
		db.SetMaxOpenConns(1)
	default:
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrPing, err)
	}

	return db, nil
}

func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return dsn + "?" + sqlitePragmas
}
