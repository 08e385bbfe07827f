package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

func testBatch(contact string) *domain.ReservationBatch {
	return &domain.ReservationBatch{
		ID:        uuid.MustParse("6f1c1a52-8c1e-4d8e-9d2a-3f7b1b1e2c11"),
		Date:      domain.NewDate(2024, time.June, 5),
		Slots:     []domain.HourSlot{15, 16},
		Contact:   domain.Contact(contact),
		CreatedAt: time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestWebhookDispatcher(t *testing.T) {
	var (
		got     ConfirmationEvent
		headers http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d, err := NewWebhookDispatcher(srv.URL, "secret", time.Second, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, d.Dispatch(context.Background(), testBatch("9876543210")))

	assert.Equal(t, EventReservationConfirmed, got.Event)
	assert.Equal(t, "05-06-2024", got.Date)
	assert.Equal(t, []string{"15:00", "16:00"}, got.Slots)
	assert.Equal(t, "9876543210", got.Contact)
	assert.Equal(t, "Bearer secret", headers.Get("Authorization"))
	assert.Equal(t, "6f1c1a52-8c1e-4d8e-9d2a-3f7b1b1e2c11", headers.Get("Idempotency-Key"))
}

func TestWebhookDispatcher_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d, err := NewWebhookDispatcher(srv.URL, "", time.Second, logger.Nop())
	require.NoError(t, err)

	err = d.Dispatch(context.Background(), testBatch("9876543210"))
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "429")
}

func TestWebhookDispatcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	d, err := NewWebhookDispatcher(url, "", time.Second, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, d.Dispatch(context.Background(), testBatch("9876543210")), ErrDelivery)
}

type fakeMailSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeMailSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

func TestEmailDispatcher(t *testing.T) {
	sender := &fakeMailSender{}
	d := NewEmailDispatcherWithSender(sender, "bookings@turf.example", "owner@turf.example", logger.Nop())

	require.NoError(t, d.Dispatch(context.Background(), testBatch("alice@example.com")))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	require.Len(t, msg.GetTo(), 1)
	assert.Equal(t, "alice@example.com", msg.GetTo()[0].Address)
	require.Len(t, msg.GetBcc(), 1)
	assert.Equal(t, []string{"Turf booking confirmed for 05-06-2024"}, msg.GetGenHeader(mail.HeaderSubject))
}

func TestEmailDispatcher_Errors(t *testing.T) {
	sender := &fakeMailSender{err: errors.New("535 authentication failed")}
	d := NewEmailDispatcherWithSender(sender, "bookings@turf.example", "", logger.Nop())

	assert.ErrorIs(t, d.Dispatch(context.Background(), testBatch("9876543210")), ErrUnsupportedContact)
	assert.Empty(t, sender.sent, "phone contact is rejected before dialing")

	assert.ErrorIs(t, d.Dispatch(context.Background(), testBatch("alice@example.com")), ErrDelivery)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaDispatcher(t *testing.T) {
	w := &fakeWriter{}
	d := NewKafkaDispatcherWithWriter(w, logger.Nop())
	batch := testBatch("alice@example.com")

	require.NoError(t, d.Dispatch(context.Background(), batch))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, batch.ID.String(), string(msg.Key))

	var event ConfirmationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, batch.ID.String(), event.BatchID)
	assert.Equal(t, EventReservationConfirmed, string(msg.Headers[0].Value))

	require.NoError(t, d.Close())
	assert.True(t, w.closed)
}

func TestKafkaDispatcher_WriteError(t *testing.T) {
	d := NewKafkaDispatcherWithWriter(&fakeWriter{err: kafka.LeaderNotAvailable}, logger.Nop())

	assert.ErrorIs(t, d.Dispatch(context.Background(), testBatch("9876543210")), ErrDelivery)
}

func TestNew(t *testing.T) {
	d, err := New(Config{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DriverLog, d.Name())
	assert.NoError(t, d.Dispatch(context.Background(), testBatch("9876543210")))

	_, err = New(Config{Driver: "pigeon"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)

	_, err = New(Config{Driver: DriverWebhook}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Driver: DriverKafka, KafkaTopic: "reservations"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Driver: DriverEmail}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	d, err = New(Config{Driver: DriverKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "reservations"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DriverKafka, d.Name())
	assert.NoError(t, d.Close())
}
