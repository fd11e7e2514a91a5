package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBInUseConns    *prometheus.GaugeVec

	PollerTicksTotal *prometheus.CounterVec
	KioskSubscribers prometheus.Gauge

	BlockedSlotsTotal *prometheus.CounterVec
	BookingFlowsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в отдельном реестре
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Reservation API request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "outcome"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"kind"}),
		DBOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		PollerTicksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "poller_ticks_total",
			Help:        "Poller ticks by outcome",
			ConstLabels: constLabels,
		}, []string{"poller", "outcome"}),
		KioskSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "kiosk_subscribers",
			Help:        "Connected kiosk screens",
			ConstLabels: constLabels,
		}),
		BlockedSlotsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "blocked_slots_total",
			Help:        "Bulk block create requests by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		BookingFlowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_flows_total",
			Help:        "Booking flow terminal transitions",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConns,
		m.DBInUseConns,
		m.PollerTicksTotal,
		m.KioskSubscribers,
		m.BlockedSlotsTotal,
		m.BookingFlowsTotal,
	)

	return m
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Методы ниже безопасны для nil-получателя: метрики могут быть выключены в конфиге

// ObserveUpstream фиксирует длительность вызова внешнего API
func (m *Metrics) ObserveUpstream(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequestDuration.WithLabelValues(operation, outcome).Observe(d.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// IncPollerTick увеличивает счётчик тиков поллера
func (m *Metrics) IncPollerTick(poller, outcome string) {
	if m == nil {
		return
	}
	m.PollerTicksTotal.WithLabelValues(poller, outcome).Inc()
}

// SetKioskSubscribers выставляет число подключённых экранов
func (m *Metrics) SetKioskSubscribers(n int) {
	if m == nil {
		return
	}
	m.KioskSubscribers.Set(float64(n))
}

// AddBlockedSlots увеличивает счётчик блокировок по исходу
func (m *Metrics) AddBlockedSlots(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BlockedSlotsTotal.WithLabelValues(outcome).Add(float64(n))
}

// IncBookingFlow увеличивает счётчик завершённых сценариев бронирования
func (m *Metrics) IncBookingFlow(result string) {
	if m == nil {
		return
	}
	m.BookingFlowsTotal.WithLabelValues(result).Inc()
}

// SetDBPool выставляет статистику пула соединений
func (m *Metrics) SetDBPool(db string, open, inUse int) {
	if m == nil {
		return
	}
	m.DBOpenConns.WithLabelValues(db).Set(float64(open))
	m.DBInUseConns.WithLabelValues(db).Set(float64(inUse))
}
