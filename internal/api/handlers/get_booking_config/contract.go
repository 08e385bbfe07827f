package get_booking_config

import "github.com/m04kA/SMC-TurfBooking/internal/service/config/models"

type ConfigService interface {
	Get() *models.SettingsResponse
}
