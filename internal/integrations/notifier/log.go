package notifier

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// LogDispatcher только пишет подтверждение в лог. Драйвер по умолчанию.
type LogDispatcher struct {
	log Logger
}

// NewLogDispatcher создает драйвер, пишущий в лог
func NewLogDispatcher(log Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Name() string {
	return DriverLog
}

func (d *LogDispatcher) Dispatch(_ context.Context, batch *domain.ReservationBatch) error {
	d.log.Info("Notification: batch=%s, contact=%s, date=%s, slots=%v",
		batch.ID, batch.Contact.Masked(), batch.Date, domain.SlotStrings(batch.Slots))
	return nil
}

func (d *LogDispatcher) Close() error {
	return nil
}
