package config

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/service/config/models"
)

// Service отдает настройки бронирования, выбранные при деплое.
// Настройки не меняются во время работы.
type Service struct {
	window             Window
	contactMode        domain.ContactMode
	notificationDriver string
	timeProvider       TimeProvider
}

// NewService создает новый экземпляр сервиса настроек
func NewService(window Window, contactMode domain.ContactMode, notificationDriver string) *Service {
	return &Service{
		window:             window,
		contactMode:        contactMode,
		notificationDriver: notificationDriver,
		timeProvider:       domain.SystemClock{},
	}
}

// Get возвращает текущие настройки; today и lastBookableDate считаются от серверного времени
func (s *Service) Get() *models.SettingsResponse {
	now := s.timeProvider.Now()
	return &models.SettingsResponse{
		Timezone:           s.window.Location().String(),
		HorizonDays:        s.window.HorizonDays(),
		Today:              s.window.Today(now).String(),
		LastBookableDate:   s.window.LastDate(now).String(),
		Slots:              domain.SlotStrings(s.window.ListHourSlots()),
		ContactMode:        string(s.contactMode),
		NotificationDriver: s.notificationDriver,
	}
}
