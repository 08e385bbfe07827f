package models

// SettingsResponse публичные настройки бронирования для клиента
type SettingsResponse struct {
	Timezone           string   `json:"timezone"`
	HorizonDays        int      `json:"horizonDays"`
	Today              string   `json:"today"`
	LastBookableDate   string   `json:"lastBookableDate"`
	Slots              []string `json:"slots"`
	ContactMode        string   `json:"contactMode"`        // phone | email
	NotificationDriver string   `json:"notificationDriver"` // log | email | webhook | kafka
}
