package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // часовой пояс площадки не должен зависеть от образа

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

// EnvPrefix префикс переменных окружения, переопределяющих файл
const EnvPrefix = "TURF_"

var (
	// ErrLoad файл или окружение не удалось прочитать
	ErrLoad = errors.New("config: load failed")
	// ErrInvalid значения конфигурации некорректны
	ErrInvalid = errors.New("config: invalid value")
)

var notificationDrivers = map[string]struct{}{
	"log":     {},
	"email":   {},
	"webhook": {},
	"kafka":   {},
}

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Notification NotificationConfig `toml:"notification"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	RequestTimeout  int `toml:"request_timeout"`  // секунды, 0 - без ограничения
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
	IdempotencyTTL  int `toml:"idempotency_ttl"`  // минуты, 0 - выключено
}

type DatabaseConfig struct {
	Driver          string `toml:"driver" env:"DB_DRIVER"` // sqlite | postgres
	Path            string `toml:"path" env:"DB_PATH"`     // файл sqlite
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type BookingConfig struct {
	Timezone      string `toml:"timezone" env:"TIMEZONE"`
	HorizonDays   int    `toml:"horizon_days" env:"HORIZON_DAYS"`
	FirstSlotHour int    `toml:"first_slot_hour" env:"FIRST_SLOT_HOUR"`
	LastSlotHour  int    `toml:"last_slot_hour" env:"LAST_SLOT_HOUR"`
	ContactMode   string `toml:"contact_mode" env:"CONTACT_MODE"` // phone | email
	NotifyTimeout int    `toml:"notify_timeout"`                  // секунды
}

type NotificationConfig struct {
	Driver  string        `toml:"driver" env:"NOTIFICATION_DRIVER"` // log | email | webhook | kafka
	Email   EmailConfig   `toml:"email"`
	Webhook WebhookConfig `toml:"webhook"`
	Kafka   KafkaConfig   `toml:"kafka"`
}

type EmailConfig struct {
	Host     string `toml:"host" env:"SMTP_HOST"`
	Port     int    `toml:"port" env:"SMTP_PORT"`
	Username string `toml:"username" env:"SMTP_USERNAME"`
	Password string `toml:"password" env:"SMTP_PASSWORD"`
	From     string `toml:"from" env:"SMTP_FROM"`
	Bcc      string `toml:"bcc" env:"SMTP_BCC"`
	NoTLS    bool   `toml:"no_tls"`
}

type WebhookConfig struct {
	URL     string `toml:"url" env:"WEBHOOK_URL"`
	Token   string `toml:"token" env:"WEBHOOK_TOKEN"`
	Timeout int    `toml:"timeout"` // секунды
}

type KafkaConfig struct {
	Brokers []string `toml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `toml:"topic" env:"KAFKA_TOPIC"`
}

// Default возвращает конфигурацию по умолчанию: sqlite, телефон, лог вместо уведомлений
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			RequestTimeout:  20,
			ShutdownTimeout: 15,
			IdempotencyTTL:  60,
		},
		Database: DatabaseConfig{
			Driver:          sqlbuilder.DriverSQLite,
			Path:            "turf.db",
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "turf-booking",
		},
		Booking: BookingConfig{
			Timezone:      domain.DefaultTimezone,
			HorizonDays:   domain.DefaultHorizonDays,
			FirstSlotHour: domain.DefaultFirstSlotHour,
			LastSlotHour:  domain.DefaultLastSlotHour,
			ContactMode:   string(domain.ContactModePhone),
			NotifyTimeout: 10,
		},
		Notification: NotificationConfig{
			Driver: "log",
			Email: EmailConfig{
				Port: 587,
			},
			Webhook: WebhookConfig{
				Timeout: 5,
			},
			Kafka: KafkaConfig{
				Topic: "reservations",
			},
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем файл (если path не пуст), затем TURF_* из окружения.
// Ключи, которых нет в файле, сохраняют значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoad, err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Booking.ContactMode = strings.ToLower(strings.TrimSpace(c.Booking.ContactMode))
	c.Notification.Driver = strings.ToLower(strings.TrimSpace(c.Notification.Driver))
	if c.Notification.Driver == "" {
		c.Notification.Driver = "log"
	}
}

// Validate проверяет значения, от которых зависит запуск
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalid, c.Server.HTTPPort)
	}

	if !sqlbuilder.IsSupported(c.Database.Driver) {
		return fmt.Errorf("%w: database.driver=%q, expected sqlite or postgres", ErrInvalid, c.Database.Driver)
	}
	if c.Database.Driver == sqlbuilder.DriverSQLite && c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is required for sqlite", ErrInvalid)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone=%q: %v", ErrInvalid, c.Booking.Timezone, err)
	}
	if c.Booking.HorizonDays < 0 || c.Booking.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: booking.horizon_days=%d", ErrInvalid, c.Booking.HorizonDays)
	}
	if c.Booking.FirstSlotHour < domain.MinSlotHour || c.Booking.LastSlotHour > domain.MaxSlotHour ||
		c.Booking.FirstSlotHour > c.Booking.LastSlotHour {
		return fmt.Errorf("%w: booking slot hours %d..%d", ErrInvalid, c.Booking.FirstSlotHour, c.Booking.LastSlotHour)
	}
	if _, err := domain.ParseContactMode(c.Booking.ContactMode); err != nil {
		return fmt.Errorf("%w: booking.contact_mode=%q", ErrInvalid, c.Booking.ContactMode)
	}

	if _, ok := notificationDrivers[c.Notification.Driver]; !ok {
		return fmt.Errorf("%w: notification.driver=%q", ErrInvalid, c.Notification.Driver)
	}
	if c.Notification.Driver == "email" && c.Booking.ContactMode != string(domain.ContactModeEmail) {
		return fmt.Errorf("%w: notification.driver=email requires booking.contact_mode=email", ErrInvalid)
	}

	return nil
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == sqlbuilder.DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс площадки
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

func seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration     { return seconds(s.ReadTimeout) }
func (s ServerConfig) WriteTimeoutDuration() time.Duration    { return seconds(s.WriteTimeout) }
func (s ServerConfig) IdleTimeoutDuration() time.Duration     { return seconds(s.IdleTimeout) }
func (s ServerConfig) RequestTimeoutDuration() time.Duration  { return seconds(s.RequestTimeout) }
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration { return seconds(s.ShutdownTimeout) }
func (s ServerConfig) IdempotencyTTLDuration() time.Duration {
	return time.Duration(s.IdempotencyTTL) * time.Minute
}
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration { return seconds(d.ConnMaxLifetime) }
func (b BookingConfig) NotifyTimeoutDuration() time.Duration    { return seconds(b.NotifyTimeout) }
func (w WebhookConfig) TimeoutDuration() time.Duration          { return seconds(w.Timeout) }
