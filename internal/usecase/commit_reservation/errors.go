package commit_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

var (
	// ErrInvalidRequest возвращается при некорректных дате, слотах или контакте
	ErrInvalidRequest = errors.New("commit_reservation: invalid request")

	// ErrOutOfWindow возвращается, когда дата вне горизонта бронирования или слот уже начался
	ErrOutOfWindow = errors.New("commit_reservation: date is outside the booking window")

	// ErrSlotConflict возвращается, когда хотя бы один слот уже забронирован
	ErrSlotConflict = errors.New("commit_reservation: slot already reserved")

	// ErrStorageFailure возвращается при ошибках хранилища
	ErrStorageFailure = errors.New("commit_reservation: storage failure")
)

// SlotConflictError называет слоты, которые уже заняты.
// errors.Is(err, ErrSlotConflict) для неё истинно.
type SlotConflictError struct {
	Date  domain.Date
	Slots []domain.HourSlot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v: %s on %s", ErrSlotConflict, strings.Join(domain.SlotStrings(e.Slots), ", "), e.Date)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
