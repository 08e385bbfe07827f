package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// WebhookDispatcher отправляет событие POST-запросом в шлюз уведомлений (SMS, мессенджеры)
type WebhookDispatcher struct {
	url        string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewWebhookDispatcher создает клиента шлюза уведомлений
func NewWebhookDispatcher(url, token string, timeout time.Duration, log Logger) (*WebhookDispatcher, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: webhook url is required", ErrInvalidConfig)
	}
	return &WebhookDispatcher{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}, nil
}

func (d *WebhookDispatcher) Name() string {
	return DriverWebhook
}

// Dispatch отправляет событие; любой ответ, кроме 2xx, считается ошибкой доставки
func (d *WebhookDispatcher) Dispatch(ctx context.Context, batch *domain.ReservationBatch) error {
	body, err := json.Marshal(NewConfirmationEvent(batch))
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", batch.ID.String())
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	d.log.Info("Notification: webhook delivered batch=%s", batch.ID)
	return nil
}

func (d *WebhookDispatcher) Close() error {
	d.httpClient.CloseIdleConnections()
	return nil
}
