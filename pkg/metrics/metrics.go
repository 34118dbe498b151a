package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Гостиница
	CheckInsTotal      *prometheus.CounterVec
	CheckInsRejected   *prometheus.CounterVec
	CheckOutsTotal     *prometheus.CounterVec
	RoomsOccupied      *prometheus.GaugeVec
	RoomRevenueTotal   *prometheus.CounterVec
	RoomServiceOrders  prometheus.Counter
	RoomServiceRevenue prometheus.Counter
	RoomServiceIgnored prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CheckInsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "check_ins_total",
			Help:      "Successful check-ins by room type.",
		}, []string{"room_type"}),
		CheckInsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "check_ins_rejected_total",
			Help:      "Rejected check-ins by reason.",
		}, []string{"reason"}),
		CheckOutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "check_outs_total",
			Help:      "Completed checkouts by room type.",
		}, []string{"room_type"}),
		RoomsOccupied: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "rooms_occupied",
			Help:      "Currently occupied rooms by room type.",
		}, []string{"room_type"}),
		RoomRevenueTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "room_revenue_total",
			Help:      "Room charges settled at checkout by room type.",
		}, []string{"room_type"}),
		RoomServiceOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "room_service_orders_total",
			Help:      "Accepted room service requests.",
		}),
		RoomServiceRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "room_service_revenue_total",
			Help:      "Room service charges accrued.",
		}),
		RoomServiceIgnored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "room_service_ignored_items_total",
			Help:      "Menu codes in room service requests that were not found in the catalog.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CheckInsTotal,
		m.CheckInsRejected,
		m.CheckOutsTotal,
		m.RoomsOccupied,
		m.RoomRevenueTotal,
		m.RoomServiceOrders,
		m.RoomServiceRevenue,
		m.RoomServiceIgnored,
	)

	return m
}

// namespace приводит имя сервиса к допустимому имени prometheus
func namespace(serviceName string) string {
	r := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToLower(r.Replace(serviceName))
}
