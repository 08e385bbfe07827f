package notifier

import (
	"fmt"
	"strings"
	"time"
)

// Поддерживаемые драйверы уведомлений
const (
	DriverLog     = "log"
	DriverEmail   = "email"
	DriverWebhook = "webhook"
	DriverKafka   = "kafka"
)

// Config выбор и параметры драйвера
type Config struct {
	Driver string

	Email EmailConfig

	WebhookURL     string
	WebhookToken   string
	WebhookTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

// New создает драйвер по конфигурации
func New(cfg Config, log Logger) (Dispatcher, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLog:
		return NewLogDispatcher(log), nil
	case DriverEmail:
		return NewEmailDispatcher(cfg.Email, log)
	case DriverWebhook:
		return NewWebhookDispatcher(cfg.WebhookURL, cfg.WebhookToken, cfg.WebhookTimeout, log)
	case DriverKafka:
		return NewKafkaDispatcher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
