package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

const (
	tableName = "reservations"

	pgUniqueViolation = "23505"
)

// Repository репозиторий бронирований слотов.
// Записи только добавляются: не обновляются и не удаляются.
type Repository struct {
	db      DBExecutor
	driver  string
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		driver:  driver,
		builder: sqlbuilder.New(driver),
	}
}

// LockDate берет эксклюзивную блокировку даты до конца текущей транзакции.
// В postgres это advisory-блокировка, в sqlite запись и так сериализована
// единственным соединением, поэтому вызов ничего не делает.
func (r *Repository) LockDate(ctx context.Context, date domain.Date) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	if r.driver != sqlbuilder.DriverPostgres {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.
		Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtext(?))", tableName+":"+date.Storage())).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockDate - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockDate - acquire lock for %s: %v", ErrExecQuery, date, err)
	}

	return nil
}

// CreateBatch сохраняет все слоты пакета одним INSERT.
// Если хотя бы один слот уже занят, ничего не сохраняется и возвращается ErrSlotTaken.
func (r *Repository) CreateBatch(ctx context.Context, batch *domain.ReservationBatch) error {
	if len(batch.Slots) == 0 {
		return ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := r.builder.Insert(tableName).
		Columns("batch_id", "contact", "booking_date", "slot", "created_at")
	for _, slot := range batch.Slots {
		insert = insert.Values(
			batch.ID.String(),
			batch.Contact.String(),
			batch.Date.Storage(),
			slot.String(),
			batch.CreatedAt.UTC(),
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrSlotTaken, batch.Date)
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSlotsByDate возвращает занятые слоты на дату в порядке возрастания
func (r *Repository) GetSlotsByDate(ctx context.Context, date domain.Date) ([]domain.HourSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.
		Select("slot").
		From(tableName).
		Where(squirrel.Eq{"booking_date": date.Storage()}).
		OrderBy("slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.HourSlot, 0)
	for rows.Next() {
		var slot domain.HourSlot
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetSlotsByDate - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByDate возвращает все бронирования на дату, отсортированные по слоту
func (r *Repository) GetByDate(ctx context.Context, date domain.Date) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.
		Select("id", "batch_id", "contact", "slot", "created_at").
		From(tableName).
		Where(squirrel.Eq{"booking_date": date.Storage()}).
		OrderBy("slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var (
			res       domain.Reservation
			contact   string
			createdAt time.Time
		)
		if err := rows.Scan(&res.ID, &res.BatchID, &contact, &res.Slot, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan reservation: %v", ErrScanRow, err)
		}
		res.Contact = domain.Contact(contact)
		res.Date = date
		res.CreatedAt = createdAt
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows iteration: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}
