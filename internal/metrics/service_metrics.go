package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// ServiceMetrics содержит метрики бизнес-операций магазина.
// Методы безопасны для nil-получателя: сервисы в тестах работают без метрик.
type ServiceMetrics struct {
	// Счётчики и длительность операций сервисов
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	// Конфликты версий по сущностям
	versionConflicts *prometheus.CounterVec

	// Заказы и остатки
	ordersCreated   prometheus.Counter
	stockRejections prometheus.Counter

	// Побочные события
	timelineEvents prometheus.Counter
	outboxEvents   *prometheus.CounterVec
}

// NewServiceMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewServiceMetrics() *ServiceMetrics {
	return NewServiceMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewServiceMetricsWithRegisterer регистрирует метрики в указанном реестре.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewServiceMetricsWithRegisterer(registerer prometheus.Registerer) *ServiceMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ServiceMetrics{
		operations: register(registerer, "webshop_operations_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webshop_operations_total",
			Help: "Total number of service operations by result",
		}, []string{"service", "operation", "result"})),
		operationDuration: register(registerer, "webshop_operation_duration_seconds", prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webshop_operation_duration_seconds",
			Help:    "Duration of service operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"service", "operation"})),
		versionConflicts: register(registerer, "webshop_version_conflicts_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webshop_version_conflicts_total",
			Help: "Total number of rejected writes because of concurrent update or delete",
		}, []string{"service", "reason"})),
		ordersCreated: register(registerer, "webshop_orders_created_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webshop_orders_created_total",
			Help: "Total number of orders created",
		})),
		stockRejections: register(registerer, "webshop_stock_rejections_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webshop_stock_rejections_total",
			Help: "Total number of order writes rejected because of insufficient stock",
		})),
		timelineEvents: register(registerer, "webshop_timeline_events_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webshop_timeline_events_total",
			Help: "Total number of order timeline events recorded",
		})),
		outboxEvents: register(registerer, "webshop_outbox_events_enqueued_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webshop_outbox_events_enqueued_total",
			Help: "Total number of domain events written to the outbox",
		}, []string{"event_type"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// ObserveOperation учитывает результат и длительность операции сервиса.
func (m *ServiceMetrics) ObserveOperation(service, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = domain.KindOf(err).String()
	}
	m.operations.WithLabelValues(service, operation, result).Inc()
	m.operationDuration.WithLabelValues(service, operation).Observe(time.Since(started).Seconds())

	switch {
	case errors.Is(err, domain.ErrConcurrentUpdate):
		m.versionConflicts.WithLabelValues(service, "updated").Inc()
	case errors.Is(err, domain.ErrConcurrentDelete):
		m.versionConflicts.WithLabelValues(service, "deleted").Inc()
	case errors.Is(err, domain.ErrArticleQuantity):
		m.stockRejections.Inc()
	}
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *ServiceMetrics) RecordOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// RecordTimelineEvent увеличивает счётчик событий истории заказа.
func (m *ServiceMetrics) RecordTimelineEvent() {
	if m == nil {
		return
	}
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий, записанных в outbox.
func (m *ServiceMetrics) RecordOutboxEvent(eventType string) {
	if m == nil {
		return
	}
	m.outboxEvents.WithLabelValues(eventType).Inc()
}
