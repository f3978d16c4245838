package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	close(ch)
	var total float64
	for m := range ch {
		metric := &dto.Metric{}
		if err := m.Write(metric); err != nil {
			t.Fatalf("failed to write metric: %v", err)
		}
		total += metric.GetCounter().GetValue()
	}
	return total
}

func TestObserveOperationLabelsResultByKind(t *testing.T) {
	m := NewServiceMetricsWithRegisterer(prometheus.NewRegistry())

	started := time.Now()
	m.ObserveOperation("profile", "UpdateProfile", started, nil)
	m.ObserveOperation("profile", "UpdateProfile", started, domain.WithKey(domain.ErrConcurrentUpdate, 4))
	m.ObserveOperation("profile", "DeleteProfile", started, domain.ErrConcurrentDelete)
	m.ObserveOperation("order", "CreateOrder", started, domain.ErrArticleQuantity)
	m.ObserveOperation("order", "CreateOrder", started, errors.New("db down"))

	if got := counterValue(t, m.operations.WithLabelValues("profile", "UpdateProfile", "ok")); got != 1 {
		t.Errorf("expected 1 ok update, got %f", got)
	}
	if got := counterValue(t, m.operations.WithLabelValues("profile", "UpdateProfile", "concurrency")); got != 1 {
		t.Errorf("expected 1 concurrency update, got %f", got)
	}
	if got := counterValue(t, m.operations.WithLabelValues("order", "CreateOrder", "internal")); got != 1 {
		t.Errorf("expected 1 internal failure, got %f", got)
	}
	if got := counterValue(t, m.versionConflicts.WithLabelValues("profile", "updated")); got != 1 {
		t.Errorf("expected 1 updated conflict, got %f", got)
	}
	if got := counterValue(t, m.versionConflicts.WithLabelValues("profile", "deleted")); got != 1 {
		t.Errorf("expected 1 deleted conflict, got %f", got)
	}
	if got := counterValue(t, m.stockRejections); got != 1 {
		t.Errorf("expected 1 stock rejection, got %f", got)
	}
}

func TestRecordCounters(t *testing.T) {
	m := NewServiceMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderCreated()
	m.RecordOrderCreated()
	m.RecordTimelineEvent()
	m.RecordOutboxEvent("order.created")

	if got := counterValue(t, m.ordersCreated); got != 2 {
		t.Errorf("expected 2 orders, got %f", got)
	}
	if got := counterValue(t, m.timelineEvents); got != 1 {
		t.Errorf("expected 1 timeline event, got %f", got)
	}
	if got := counterValue(t, m.outboxEvents.WithLabelValues("order.created")); got != 1 {
		t.Errorf("expected 1 outbox event, got %f", got)
	}
}

func TestRegisterReusesExistingCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewServiceMetricsWithRegisterer(reg)
	second := NewServiceMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	if got := counterValue(t, second.ordersCreated); got != 1 {
		t.Errorf("expected shared collector, got %f", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *ServiceMetrics
	m.ObserveOperation("profile", "x", time.Now(), nil)
	m.RecordOrderCreated()
	m.RecordTimelineEvent()
	m.RecordOutboxEvent("x")
}
