package commit_reservation

import "github.com/m04kA/SMC-TurfBooking/internal/domain"

// Статусы отправки уведомления
const (
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// Request модель запроса на бронирование. Значения сырые, как пришли от клиента.
type Request struct {
	Date    string   // Дата в формате DD-MM-YYYY
	Slots   []string // Слоты в формате HH:00
	Contact string   // Телефон или email, в зависимости от режима
}

// Response модель ответа с зафиксированным бронированием
type Response struct {
	Batch        *domain.ReservationBatch
	Notification string // sent | failed
	Warning      string // Заполнено, если бронь сохранена, но уведомление не ушло
}
