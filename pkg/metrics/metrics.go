package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storageOpsTotal     *prometheus.CounterVec
	storageChangesTotal prometheus.Counter
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storageOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "storage_operations_total",
			Help:        "Total number of key-value storage operations",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		storageChangesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "storage_change_notifications_total",
			Help:        "Total number of storage change notifications received",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStorageOp фиксирует операцию с key-value хранилищем
func (m *Metrics) ObserveStorageOp(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storageOpsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveStorageChange фиксирует полученное уведомление об изменении хранилища
func (m *Metrics) ObserveStorageChange() {
	m.storageChangesTotal.Inc()
}
