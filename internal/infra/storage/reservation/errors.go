package reservation

import "errors"

var (
	// ErrSlotTaken возвращается, когда хотя бы один слот на дату уже забронирован
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrNotInTransaction возвращается, если блокировка даты запрошена вне транзакции
	ErrNotInTransaction = errors.New("reservation.repository: operation requires a transaction")

	// ErrEmptyBatch возвращается при попытке сохранить пакет без слотов
	ErrEmptyBatch = errors.New("reservation.repository: empty batch")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
