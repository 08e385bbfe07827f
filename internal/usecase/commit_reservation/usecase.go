package commit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TurfBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TurfBooking/pkg/metrics"
)

// DefaultNotifyTimeout ограничение на отправку уведомления после коммита
const DefaultNotifyTimeout = 10 * time.Second

// UseCase use case для фиксации бронирования слотов
type UseCase struct {
	reservationRepo  ReservationRepository
	txManager        TransactionManager
	dateLocker       DateLocker
	contactValidator ContactValidator
	notifier         NotificationDispatcher
	window           *domain.Window
	metrics          Metrics
	timeProvider     TimeProvider
	notifyTimeout    time.Duration
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	dateLocker DateLocker,
	contactValidator ContactValidator,
	notifier NotificationDispatcher,
	window *domain.Window,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		txManager:        txManager,
		dateLocker:       dateLocker,
		contactValidator: contactValidator,
		notifier:         notifier,
		window:           window,
		metrics:          metrics,
		timeProvider:     domain.SystemClock{},
		notifyTimeout:    DefaultNotifyTimeout,
		logger:           logger,
	}
}

// WithNotifyTimeout задает время на отправку подтверждения; d <= 0 оставляет значение по умолчанию
func (uc *UseCase) WithNotifyTimeout(d time.Duration) *UseCase {
	if d > 0 {
		uc.notifyTimeout = d
	}
	return uc
}

// Execute проверяет запрос и атомарно сохраняет все слоты на дату.
// Проверка конфликтов и вставка выполняются под блокировкой даты в одной транзакции;
// уникальный индекс (дата, слот) страхует от двойного бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы запроса
	date, slots, contact, err := validateRequest(req, uc.window, uc.contactValidator)
	if err != nil {
		uc.logger.Warn("CommitReservation: validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeInvalidRequest)
		return nil, err
	}

	uc.logger.Info("CommitReservation: date=%s, slots=%v, contact=%s",
		date, domain.SlotStrings(slots), contact.Masked())

	// 2. Проверка горизонта по серверному времени
	now := uc.timeProvider.Now()
	if err := validateWindow(uc.window, date, now); err != nil {
		uc.logger.Warn("CommitReservation: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeOutOfWindow)
		return nil, err
	}

	// 3. Сериализуем коммиты одной даты внутри процесса
	unlock, err := uc.dateLocker.Lock(ctx, date.Storage())
	if err != nil {
		uc.logger.Error("CommitReservation: failed to lock date=%s: %v", date, err)
		uc.metrics.ObserveBooking(metrics.OutcomeStorageFailure)
		return nil, fmt.Errorf("%w: lock date: %v", ErrStorageFailure, err)
	}
	defer unlock()

	batch := &domain.ReservationBatch{
		ID:        uuid.New(),
		Date:      date,
		Slots:     slots,
		Contact:   contact,
		CreatedAt: now,
	}

	// 4. Проверка конфликтов и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.reservationRepo.LockDate(txCtx, date); err != nil {
			return fmt.Errorf("%w: lock date: %v", ErrStorageFailure, err)
		}

		taken, err := uc.reservationRepo.GetSlotsByDate(txCtx, date)
		if err != nil {
			return fmt.Errorf("%w: get reserved slots: %v", ErrStorageFailure, err)
		}

		if conflicts := domain.IntersectSlots(slots, taken); len(conflicts) > 0 {
			return &SlotConflictError{Date: date, Slots: conflicts}
		}

		if err := validateNotStarted(uc.window, date, slots, now); err != nil {
			return err
		}

		if err := uc.reservationRepo.CreateBatch(txCtx, batch); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return err
			}
			return fmt.Errorf("%w: create batch: %v", ErrStorageFailure, err)
		}

		return nil
	})

	if err != nil {
		return nil, uc.handleCommitError(ctx, date, slots, err)
	}

	uc.metrics.ObserveBooking(metrics.OutcomeCommitted)
	uc.metrics.AddReservations(len(slots))
	uc.logger.Info("CommitReservation: committed batch=%s, date=%s, slots=%v",
		batch.ID, date, domain.SlotStrings(slots))

	// 5. Уведомление не откатывает сохраненную бронь
	resp := &Response{Batch: batch, Notification: NotificationSent}
	if err := uc.notify(ctx, batch); err != nil {
		uc.logger.Warn("CommitReservation: batch=%s committed, notification via %s failed: %v",
			batch.ID, uc.notifier.Name(), err)
		uc.metrics.IncNotificationFailure(uc.notifier.Name())
		resp.Notification = NotificationFailed
		resp.Warning = "reservation confirmed, but the confirmation message could not be delivered"
	}

	return resp, nil
}

// handleCommitError переводит ошибку транзакции в таксономию use case
func (uc *UseCase) handleCommitError(ctx context.Context, date domain.Date, slots []domain.HourSlot, err error) error {
	var conflict *SlotConflictError
	if errors.As(err, &conflict) {
		uc.logger.Warn("CommitReservation: %v", conflict)
		uc.metrics.ObserveBooking(metrics.OutcomeSlotConflict)
		return conflict
	}

	if errors.Is(err, ErrOutOfWindow) {
		uc.logger.Warn("CommitReservation: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeOutOfWindow)
		return err
	}

	// Гонку проиграли на уникальном индексе: перечитываем занятые слоты после отката
	if errors.Is(err, reservationRepo.ErrSlotTaken) {
		conflicts := slots
		taken, readErr := uc.reservationRepo.GetSlotsByDate(ctx, date)
		if readErr != nil {
			uc.logger.Warn("CommitReservation: failed to re-read slots for date=%s: %v", date, readErr)
		} else if intersection := domain.IntersectSlots(slots, taken); len(intersection) > 0 {
			conflicts = intersection
		}

		conflict = &SlotConflictError{Date: date, Slots: conflicts}
		uc.logger.Warn("CommitReservation: unique constraint: %v", conflict)
		uc.metrics.ObserveBooking(metrics.OutcomeSlotConflict)
		return conflict
	}

	uc.logger.Error("CommitReservation: date=%s: %v", date, err)
	uc.metrics.ObserveBooking(metrics.OutcomeStorageFailure)
	if errors.Is(err, ErrStorageFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

func (uc *UseCase) notify(ctx context.Context, batch *domain.ReservationBatch) error {
	// Клиент мог уже отключиться, но бронь сохранена: отвязываемся от отмены запроса
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	defer cancel()

	return uc.notifier.Dispatch(notifyCtx, batch)
}
