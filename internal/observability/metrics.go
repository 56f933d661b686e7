package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики Prometheus для ядра переходов и фан-аута уведомлений
type Metrics struct {
	Transitions    *prometheus.CounterVec // labels: from, to, outcome={success,rejected,error}
	FanoutFailures *prometheus.CounterVec // labels: sink={audit,admin_notifications,reporter_notification,realtime,push}
	WeatherAlerts  *prometheus.CounterVec // labels: type
	PushDeliveries *prometheus.CounterVec // labels: path={onesignal,web}, outcome={success,error}
}

// NewMetrics создает и регистрирует метрики в дефолтном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Transitions,
		m.FanoutFailures,
		m.WeatherAlerts,
		m.PushDeliveries,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы не ловить
// "already registered" при параллельных тестах
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency_response",
			Name:      "assignment_transitions_total",
			Help:      "Assignment status transitions by from/to status and outcome.",
		}, []string{"from", "to", "outcome"}),
		FanoutFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency_response",
			Name:      "notification_fanout_failures_total",
			Help:      "Best-effort notification sink failures by sink.",
		}, []string{"sink"}),
		WeatherAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency_response",
			Name:      "weather_alerts_created_total",
			Help:      "Weather alerts created by alert type.",
		}, []string{"type"}),
		PushDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency_response",
			Name:      "push_deliveries_total",
			Help:      "Push notification attempts by delivery path and outcome.",
		}, []string{"path", "outcome"}),
	}
}
