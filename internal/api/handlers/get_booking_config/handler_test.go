package get_booking_config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/service/config/models"
)

type stubService struct{}

func (stubService) Get() *models.SettingsResponse {
	return &models.SettingsResponse{
		Timezone:           "Asia/Kolkata",
		HorizonDays:        6,
		Today:              "01-06-2024",
		LastBookableDate:   "07-06-2024",
		Slots:              []string{"11:00"},
		ContactMode:        "phone",
		NotificationDriver: "log",
	}
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubService{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"timezone":"Asia/Kolkata",
		"horizonDays":6,
		"today":"01-06-2024",
		"lastBookableDate":"07-06-2024",
		"slots":["11:00"],
		"contactMode":"phone",
		"notificationDriver":"log"
	}`, rec.Body.String())
}
