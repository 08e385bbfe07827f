package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes used as label values
const (
	OutcomeCommitted      = "committed"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeOutOfWindow    = "out_of_window"
	OutcomeSlotConflict   = "slot_conflict"
	OutcomeStorageFailure = "storage_failure"
)

// Metrics набор prometheus метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec

	bookingOutcomes       *prometheus.CounterVec
	reservationsCommitted *prometheus.CounterVec
	notificationFailures  *prometheus.CounterVec
	availabilityDegraded  *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(service string) *Metrics {
	return NewWithRegistry(service, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре (используется в тестах)
func NewWithRegistry(service string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		service: service,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database operations",
		}, []string{"service", "operation"}),

		dbOpenConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),

		dbInUseConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		dbIdleConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		dbWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		bookingOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_commits_total",
			Help: "Reservation commit attempts by outcome",
		}, []string{"service", "outcome"}),

		reservationsCommitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_committed_total",
			Help: "Number of reserved hour slots",
		}, []string{"service"}),

		notificationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Confirmation dispatch failures by driver",
		}, []string{"service", "driver"}),

		availabilityDegraded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_degraded_total",
			Help: "Blocked slot lookups answered with an empty set because of a storage error",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность операции с БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(m.service).Set(float64(open))
	m.dbInUseConns.WithLabelValues(m.service).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(m.service).Set(float64(idle))
	m.dbWaitCount.WithLabelValues(m.service).Set(float64(waitCount))
}

// ObserveBooking учитывает исход попытки бронирования
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingOutcomes.WithLabelValues(m.service, outcome).Inc()
}

// AddReservations учитывает количество забронированных слотов
func (m *Metrics) AddReservations(n int) {
	if m == nil {
		return
	}
	m.reservationsCommitted.WithLabelValues(m.service).Add(float64(n))
}

// IncNotificationFailure учитывает неудачную отправку подтверждения
func (m *Metrics) IncNotificationFailure(driver string) {
	if m == nil {
		return
	}
	m.notificationFailures.WithLabelValues(m.service, driver).Inc()
}

// IncAvailabilityDegraded учитывает деградацию выдачи занятых слотов
func (m *Metrics) IncAvailabilityDegraded() {
	if m == nil {
		return
	}
	m.availabilityDegraded.WithLabelValues(m.service).Inc()
}
