// Package observability aggregates runtime counters of the presence
// layer for logs and debugging surfaces.
package observability

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
)

// StatsSnapshot is a point-in-time view of the gateway traffic.
type StatsSnapshot struct {
	ConnectionsOpened uint64 `json:"connections_opened"`
	ConnectionsClosed uint64 `json:"connections_closed"`
	EventsDispatched  uint64 `json:"events_dispatched"`
	IntentsRejected   uint64 `json:"intents_rejected"`
	At                string `json:"at"`
}

// StatsCollector counts gateway activity with atomic counters. It also
// implements contract.EventSink so it can ride the fan-out pipeline as
// a permanent sink.
type StatsCollector struct {
	log *slog.Logger

	connectionsOpened uint64
	connectionsClosed uint64
	eventsDispatched  uint64
	intentsRejected   uint64
}

func NewStatsCollector(log *slog.Logger) *StatsCollector {
	return &StatsCollector{log: log}
}

func (sc *StatsCollector) IncrConnectionsOpened() {
	atomic.AddUint64(&sc.connectionsOpened, 1)
}

func (sc *StatsCollector) IncrConnectionsClosed() {
	atomic.AddUint64(&sc.connectionsClosed, 1)
}

func (sc *StatsCollector) IncrIntentsRejected() {
	atomic.AddUint64(&sc.intentsRejected, 1)
}

// Consume counts every dispatched event. Never fails; stats must not
// interfere with delivery.
func (sc *StatsCollector) Consume(_ context.Context, _ event.DomainEvent) error {
	atomic.AddUint64(&sc.eventsDispatched, 1)
	return nil
}

func (sc *StatsCollector) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		ConnectionsOpened: atomic.LoadUint64(&sc.connectionsOpened),
		ConnectionsClosed: atomic.LoadUint64(&sc.connectionsClosed),
		EventsDispatched:  atomic.LoadUint64(&sc.eventsDispatched),
		IntentsRejected:   atomic.LoadUint64(&sc.intentsRejected),
		At:                time.Now().UTC().Format(time.RFC3339),
	}
}

// StatsReporter emits the snapshot at a fixed interval until ctx is
// done. Runs as a supervised worker.
type StatsReporter struct {
	Collector *StatsCollector
	Interval  time.Duration
}

func (r StatsReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			snap := r.Collector.Snapshot()
			r.Collector.log.Info("presence stats",
				"connections_opened", snap.ConnectionsOpened,
				"connections_closed", snap.ConnectionsClosed,
				"events_dispatched", snap.EventsDispatched,
				"intents_rejected", snap.IntentsRejected,
			)
		case <-ctx.Done():
			return nil
		}
	}
}
