// Package metrics содержит prometheus-метрики сервиса.
// Метрики регистрируются в собственном реестре, а не в глобальном,
// поэтому каждый экземпляр приложения и каждый тест получают свой набор.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fileapi"

// Metrics набор коллекторов сервиса.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	indexFetch      *prometheus.HistogramVec
	invalidDatasets *prometheus.CounterVec
}

// New создаёт и регистрирует все метрики.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		indexFetch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_fetch_duration_seconds",
			Help:      "Latency of file index downloads by result.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		invalidDatasets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_invalid_datasets_total",
			Help:      "Datasets skipped because their date range key could not be parsed.",
		}, []string{"game_id"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.indexFetch,
		m.invalidDatasets,
	)
	return m
}

// Handler отдаёт метрики в формате prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр, в котором зарегистрированы метрики.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest фиксирует завершённый HTTP-запрос.
func (m *Metrics) ObserveRequest(route, method string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveIndexFetch фиксирует загрузку индекса.
func (m *Metrics) ObserveIndexFetch(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.indexFetch.WithLabelValues(result).Observe(d.Seconds())
}

// InvalidDataset считает датасеты с неразборчивым ключом.
func (m *Metrics) InvalidDataset(gameID string) {
	m.invalidDatasets.WithLabelValues(gameID).Inc()
}
