package commit_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TurfBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
	"github.com/m04kA/SMC-TurfBooking/pkg/metrics"
)

// 01-06-2024 09:00 UTC: все слоты сегодняшнего дня еще впереди
var testNow = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

const validPhone = "9876543210"

func newTestWindow(t *testing.T) *domain.Window {
	t.Helper()
	w, err := domain.NewWindow(time.UTC, domain.DefaultHorizonDays, domain.DefaultFirstSlotHour, domain.DefaultLastSlotHour)
	require.NoError(t, err)
	return w
}

type fixture struct {
	uc       *UseCase
	repo     *mockReservationRepository
	notifier *mockNotifier
	metrics  *recordingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     &mockReservationRepository{},
		notifier: &mockNotifier{},
		metrics:  newRecordingMetrics(),
	}
	f.uc = NewUseCase(
		f.repo,
		passthroughTx{},
		noopLocker{},
		validation.PhoneValidator{},
		f.notifier,
		newTestWindow(t),
		f.metrics,
		logger.Nop(),
	)
	f.uc.timeProvider = fixedClock{now: testNow}
	return f
}

func TestExecute_InvalidRequestNeverReachesStore(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "missing date", req: &Request{Slots: []string{"12:00"}, Contact: validPhone}},
		{name: "malformed date", req: &Request{Date: "2024-06-01", Slots: []string{"12:00"}, Contact: validPhone}},
		{name: "no slots", req: &Request{Date: "01-06-2024", Contact: validPhone}},
		{name: "malformed slot", req: &Request{Date: "01-06-2024", Slots: []string{"12:30"}, Contact: validPhone}},
		{name: "slot outside daily set", req: &Request{Date: "01-06-2024", Slots: []string{"08:00"}, Contact: validPhone}},
		{name: "duplicate slot", req: &Request{Date: "01-06-2024", Slots: []string{"12:00", "12:00"}, Contact: validPhone}},
		{name: "bad contact", req: &Request{Date: "01-06-2024", Slots: []string{"12:00"}, Contact: "12345"}},
		{name: "email in phone mode", req: &Request{Date: "01-06-2024", Slots: []string{"12:00"}, Contact: "a@b.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			resp, err := f.uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Nil(t, resp)
			assert.Zero(t, f.repo.calls)
			assert.Zero(t, f.notifier.count())
			assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeInvalidRequest))
		})
	}
}

func TestExecute_InvalidEmailContactNeverReachesStore(t *testing.T) {
	for _, contact := range []string{validPhone, "a@b", "a@@b.com", ""} {
		t.Run(contact, func(t *testing.T) {
			f := newFixture(t)
			f.uc.contactValidator = validation.NewEmailValidator()

			_, err := f.uc.Execute(context.Background(), &Request{
				Date: "01-06-2024", Slots: []string{"12:00"}, Contact: contact,
			})

			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Zero(t, f.repo.calls)
		})
	}
}

func TestExecute_EmailContactIsNormalized(t *testing.T) {
	f := newFixture(t)
	f.uc.contactValidator = validation.NewEmailValidator()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"12:00"}, Contact: " Alice@Example.COM ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Contact("alice@example.com"), resp.Batch.Contact)
}

func TestExecute_TooManySlots(t *testing.T) {
	f := newFixture(t)
	slots := make([]string, domain.MaxSlotsPerBooking+1)
	for i := range slots {
		slots[i] = "12:00"
	}

	_, err := f.uc.Execute(context.Background(), &Request{Date: "01-06-2024", Slots: slots, Contact: validPhone})

	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, f.repo.calls)
}

func TestExecute_OutOfWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		slot    string
		wantErr error
	}{
		{name: "yesterday", date: "31-05-2024", slot: "12:00", wantErr: ErrOutOfWindow},
		{name: "today plus 7", date: "08-06-2024", slot: "12:00", wantErr: ErrOutOfWindow},
		{name: "today plus 6 is inclusive", date: "07-06-2024", slot: "12:00", wantErr: nil},
		{name: "today", date: "01-06-2024", slot: "11:00", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.Execute(context.Background(), &Request{
				Date: tt.date, Slots: []string{tt.slot}, Contact: validPhone,
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.repo.calls)
		})
	}
}

func TestExecute_ElapsedSlotTodayIsOutOfWindow(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = fixedClock{now: time.Date(2024, time.June, 1, 14, 10, 0, 0, time.UTC)}

	_, err := f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"14:00", "15:00"}, Contact: validPhone,
	})
	require.ErrorIs(t, err, ErrOutOfWindow)
	assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeOutOfWindow))

	_, err = f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"15:00"}, Contact: validPhone,
	})
	require.NoError(t, err)
}

func TestExecute_TakenSlotIsConflictEvenAfterItStarted(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = fixedClock{now: time.Date(2024, time.June, 1, 13, 30, 0, 0, time.UTC)}
	f.repo.getSlotsByDateFunc = func(context.Context, domain.Date) ([]domain.HourSlot, error) {
		return []domain.HourSlot{12}, nil
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"12:00", "13:00"}, Contact: validPhone,
	})

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []domain.HourSlot{12}, conflict.Slots)
	assert.NotErrorIs(t, err, ErrOutOfWindow)
}

func TestExecute_ConflictNamesTakenSlots(t *testing.T) {
	f := newFixture(t)
	f.repo.getSlotsByDateFunc = func(context.Context, domain.Date) ([]domain.HourSlot, error) {
		return []domain.HourSlot{12, 18}, nil
	}
	f.repo.createBatchFunc = func(context.Context, *domain.ReservationBatch) error {
		t.Fatal("batch must not be inserted on conflict")
		return nil
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"13:00", "12:00"}, Contact: validPhone,
	})

	require.ErrorIs(t, err, ErrSlotConflict)
	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []domain.HourSlot{12}, conflict.Slots)
	assert.Equal(t, "01-06-2024", conflict.Date.String())
	assert.Zero(t, f.notifier.count())
	assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeSlotConflict))
}

func TestExecute_UniqueViolationBecomesConflict(t *testing.T) {
	f := newFixture(t)
	reads := 0
	f.repo.getSlotsByDateFunc = func(context.Context, domain.Date) ([]domain.HourSlot, error) {
		reads++
		if reads == 1 {
			return nil, nil
		}
		// после отката видим строку победившего коммита
		return []domain.HourSlot{15}, nil
	}
	f.repo.createBatchFunc = func(context.Context, *domain.ReservationBatch) error {
		return fmt.Errorf("%w: 01-06-2024", reservationRepo.ErrSlotTaken)
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		Date: "01-06-2024", Slots: []string{"15:00", "16:00"}, Contact: validPhone,
	})

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []domain.HourSlot{15}, conflict.Slots)
	assert.Equal(t, 2, reads)
}

func TestExecute_StorageFailure(t *testing.T) {
	driverErr := errors.New("connection reset by peer")

	t.Run("read", func(t *testing.T) {
		f := newFixture(t)
		f.repo.getSlotsByDateFunc = func(context.Context, domain.Date) ([]domain.HourSlot, error) {
			return nil, driverErr
		}

		_, err := f.uc.Execute(context.Background(), &Request{Date: "02-06-2024", Slots: []string{"12:00"}, Contact: validPhone})

		require.ErrorIs(t, err, ErrStorageFailure)
		assert.NotErrorIs(t, err, driverErr, "raw driver errors do not cross the boundary")
		assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeStorageFailure))
	})

	t.Run("insert", func(t *testing.T) {
		f := newFixture(t)
		f.repo.createBatchFunc = func(context.Context, *domain.ReservationBatch) error {
			return fmt.Errorf("%w: disk full", reservationRepo.ErrExecQuery)
		}

		_, err := f.uc.Execute(context.Background(), &Request{Date: "02-06-2024", Slots: []string{"12:00"}, Contact: validPhone})

		require.ErrorIs(t, err, ErrStorageFailure)
		assert.Zero(t, f.notifier.count())
	})
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	var inserted *domain.ReservationBatch
	f.repo.createBatchFunc = func(_ context.Context, batch *domain.ReservationBatch) error {
		inserted = batch
		return nil
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date: "05-06-2024", Slots: []string{"16:00", "15:00"}, Contact: " " + validPhone + " ",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, NotificationSent, resp.Notification)
	assert.Empty(t, resp.Warning)

	assert.Same(t, inserted, resp.Batch)
	assert.Equal(t, "05-06-2024", resp.Batch.Date.String())
	assert.Equal(t, []domain.HourSlot{15, 16}, resp.Batch.Slots)
	assert.Equal(t, domain.Contact(validPhone), resp.Batch.Contact)
	assert.NotEqual(t, uuid.Nil, resp.Batch.ID)
	assert.Equal(t, testNow, resp.Batch.CreatedAt)

	assert.Equal(t, 1, f.notifier.count())
	assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeCommitted))
	assert.Equal(t, 2, f.metrics.reservations)
}

func TestExecute_NotificationFailureKeepsBooking(t *testing.T) {
	f := newFixture(t)
	f.notifier.dispatchFunc = func(context.Context, *domain.ReservationBatch) error {
		return errors.New("smtp: 451 try again later")
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date: "05-06-2024", Slots: []string{"15:00"}, Contact: validPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, NotificationFailed, resp.Notification)
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, 1, f.metrics.notificationFailures)
	assert.Equal(t, 1, f.metrics.outcome(metrics.OutcomeCommitted))
}

func TestExecute_NotificationSurvivesRequestCancellation(t *testing.T) {
	f := newFixture(t)
	f.notifier.dispatchFunc = func(ctx context.Context, _ *domain.ReservationBatch) error {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.repo.createBatchFunc = func(context.Context, *domain.ReservationBatch) error {
		// клиент отключился сразу после коммита
		cancel()
		return nil
	}

	resp, err := f.uc.Execute(ctx, &Request{Date: "05-06-2024", Slots: []string{"15:00"}, Contact: validPhone})

	require.NoError(t, err)
	assert.Equal(t, NotificationSent, resp.Notification)
}

func TestExecute_NotificationTimeoutIsAWarning(t *testing.T) {
	f := newFixture(t)
	f.uc.WithNotifyTimeout(10 * time.Millisecond)
	f.notifier.dispatchFunc = func(ctx context.Context, _ *domain.ReservationBatch) error {
		<-ctx.Done()
		return ctx.Err()
	}

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "05-06-2024", Slots: []string{"15:00"}, Contact: validPhone})

	require.NoError(t, err)
	assert.Equal(t, NotificationFailed, resp.Notification)
	assert.Equal(t, 1, f.notifier.count())
}

func TestWithNotifyTimeout_IgnoresNonPositive(t *testing.T) {
	f := newFixture(t)

	f.uc.WithNotifyTimeout(0)

	assert.Equal(t, DefaultNotifyTimeout, f.uc.notifyTimeout)
}
