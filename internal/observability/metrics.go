package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records service-operation and message-handler outcomes.
// One shared implementation serves every module; the module name travels as a
// label so dashboards can slice per module without separate collectors.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, module, operation string)
	RecordOperationSuccess(ctx context.Context, module, operation string)
	RecordOperationFailure(ctx context.Context, module, operation string)
	RecordOperationDuration(ctx context.Context, module, operation string, d time.Duration)

	RecordHandlerAttempt(module, handler string)
	RecordHandlerSuccess(module, handler string)
	RecordHandlerFailure(module, handler string)
	RecordHandlerDuration(module, handler string, d time.Duration)
}

type prometheusOperationMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec

	handlerAttempts  *prometheus.CounterVec
	handlerSuccesses *prometheus.CounterVec
	handlerFailures  *prometheus.CounterVec
	handlerDuration  *prometheus.HistogramVec
}

// NewPrometheusOperationMetrics registers and returns the shared operation
// metrics on the given registry.
func NewPrometheusOperationMetrics(reg prometheus.Registerer, namespace string) (OperationMetrics, error) {
	m := &prometheusOperationMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operation attempts.",
		}, []string{"module", "operation"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_successes_total",
			Help:      "Service operation successes.",
		}, []string{"module", "operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operation failures (errors and business failures).",
		}, []string{"module", "operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"module", "operation"}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_attempts_total",
			Help:      "Message handler attempts.",
		}, []string{"module", "handler"}),
		handlerSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_successes_total",
			Help:      "Message handler successes.",
		}, []string{"module", "handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Message handler failures.",
		}, []string{"module", "handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Message handler duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"module", "handler"}),
	}

	for _, c := range []prometheus.Collector{
		m.operationAttempts, m.operationSuccesses, m.operationFailures, m.operationDuration,
		m.handlerAttempts, m.handlerSuccesses, m.handlerFailures, m.handlerDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusOperationMetrics) RecordOperationAttempt(_ context.Context, module, operation string) {
	m.operationAttempts.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationSuccess(_ context.Context, module, operation string) {
	m.operationSuccesses.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationFailure(_ context.Context, module, operation string) {
	m.operationFailures.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationDuration(_ context.Context, module, operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(module, operation).Observe(d.Seconds())
}

func (m *prometheusOperationMetrics) RecordHandlerAttempt(module, handler string) {
	m.handlerAttempts.WithLabelValues(module, handler).Inc()
}

func (m *prometheusOperationMetrics) RecordHandlerSuccess(module, handler string) {
	m.handlerSuccesses.WithLabelValues(module, handler).Inc()
}

func (m *prometheusOperationMetrics) RecordHandlerFailure(module, handler string) {
	m.handlerFailures.WithLabelValues(module, handler).Inc()
}

func (m *prometheusOperationMetrics) RecordHandlerDuration(module, handler string, d time.Duration) {
	m.handlerDuration.WithLabelValues(module, handler).Observe(d.Seconds())
}

// NoOpMetrics discards every measurement. Used in unit tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoOpMetrics) RecordHandlerAttempt(string, string)                                   {}
func (NoOpMetrics) RecordHandlerSuccess(string, string)                                   {}
func (NoOpMetrics) RecordHandlerFailure(string, string)                                   {}
func (NoOpMetrics) RecordHandlerDuration(string, string, time.Duration)                   {}

var _ OperationMetrics = NoOpMetrics{}
