package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "homework_bot"

	PollerSubsystem   = "poller"
	TelegramSubsystem = "telegram"
)

// Метрики цикла опроса.
var (
	PollCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "poll_cycles_total",
			Help:      "Total number of poll cycles by result",
		},
		[]string{"result"},
	)

	HomeworkStatusesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "homework_statuses_processed_total",
			Help:      "Total number of homework status records processed",
		},
	)

	ErrorBacklogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "error_backlog_size",
			Help:      "Number of error notifications awaiting delivery",
		},
	)

	APIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "api_request_duration_seconds",
			Help:      "Practicum API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Метрики отправки уведомлений.
var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: TelegramSubsystem,
			Name:      "notifications_total",
			Help:      "Total number of notifications by delivery status",
		},
		[]string{"status"},
	)
)

const (
	ResultSuccess = "success"
	ResultError   = "error"

	StatusSent       = "sent"
	StatusFailed     = "failed"
	StatusSuppressed = "suppressed"
)
