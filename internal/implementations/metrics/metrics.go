package metrics

import (
	"context"
	"net/http"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/reminder"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OUTCOME_OK       = "ok"
	OUTCOME_REJECTED = "rejected"
	OUTCOME_FAILED   = "failed"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry  *prometheus.Registry
	commands  *prometheus.CounterVec
	reminders *prometheus.CounterVec
}

func New(pendingReminders func() float64) *Metrics {
	if pendingReminders == nil {
		panic(e.NewNilArgumentError("pendingReminders"))
	}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studybot_commands_total",
				Help: "Chat commands handled, by command and outcome.",
			},
			[]string{"command", "outcome"},
		),
		reminders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studybot_reminders_fired_total",
				Help: "Due reminders taken from the queue, by delivery outcome.",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(
		m.commands,
		m.reminders,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "studybot_reminders_pending",
				Help: "Reminders waiting in the queue.",
			},
			pendingReminders,
		),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ObserveCommand(command string, outcome string) {
	m.commands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentSender counts the outcome of every delivery attempt made
// through inner.
func (m *Metrics) InstrumentSender(inner reminder.Sender) reminder.Sender {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &instrumentedSender{metrics: m, inner: inner}
}

type instrumentedSender struct {
	metrics *Metrics
	inner   reminder.Sender
}

func (s *instrumentedSender) SendReminder(ctx context.Context, rem reminder.Reminder) error {
	err := s.inner.SendReminder(ctx, rem)
	outcome := OUTCOME_OK
	if err != nil {
		outcome = OUTCOME_FAILED
	}
	s.metrics.reminders.WithLabelValues(outcome).Inc()
	return err
}
