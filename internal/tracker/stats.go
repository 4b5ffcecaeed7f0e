package tracker

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	eventsApplied      *prometheus.CounterVec
	receiptsCreated    prometheus.Counter
	backfillRuns       prometheus.Counter
	stalePendingSwept  prometheus.Counter
	reconcileFailures  prometheus.Counter
}

func NewStats() (*Stats, error) {
	s := &Stats{
		eventsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_events_applied_total",
			Help: "Number of status events applied, by resulting status",
		}, []string{"status"}),
		receiptsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_receipts_created_total",
			Help: "Number of receipt snapshots created on confirmation",
		}),
		backfillRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_backfill_runs_total",
			Help: "Number of completed backfill sweeps",
		}),
		stalePendingSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_stale_pending_swept_total",
			Help: "Number of completed stale-pending cleanup sweeps",
		}),
		reconcileFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_reconcile_failures_total",
			Help: "Number of per-transaction reconciliation failures",
		}),
	}

	for _, c := range s.collectors() {
		err := prometheus.Register(c)
		if err != nil {
			return nil, errors.Join(ErrRegisterStats, err)
		}
	}

	return s, nil
}

func (s *Stats) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		s.eventsApplied,
		s.receiptsCreated,
		s.backfillRuns,
		s.stalePendingSwept,
		s.reconcileFailures,
	}
}

func (s *Stats) UnregisterStats() {
	for _, c := range s.collectors() {
		_ = prometheus.Unregister(c)
	}
}
