package observability

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/boolmin/pkg/adapters/process"
	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeToolFail = "tool_error"
	OutcomeError    = "error"
)

// Metrics holds the collectors for tool invocations.
type Metrics struct {
	Invocations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boolmin_tool_invocations_total",
				Help: "Total number of external tool invocations",
			},
			[]string{"tool", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boolmin_tool_duration_seconds",
				Help:    "Duration of external tool invocations",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"tool"},
		),
	}

	for _, c := range []prometheus.Collector{m.Invocations, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns runner hooks that record every invocation.
func (m *Metrics) Hooks() process.Hooks {
	return process.Hooks{
		OnFinish: func(ctx context.Context, tool string, elapsed time.Duration, err error) {
			m.Duration.WithLabelValues(tool).Observe(elapsed.Seconds())
			m.Invocations.WithLabelValues(tool, outcome(err)).Inc()
		},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrToolFailed):
		return OutcomeToolFail
	default:
		return OutcomeError
	}
}
