package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/contract"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
)

// EventFanout delivers domain events to every live connection of every
// user present in the target conversation or channel.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
// A slow or dead sink is abandoned after sinkTimeout so one connection
// can never stall delivery to the others.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	Log            *slog.Logger
	Events         chan event.DomainEvent
	registry       contract.IRegistry
	sinks          contract.SinkResolver
	permanentSinks []contract.EventSink
	sinkTimeout    time.Duration
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent,
	registry contract.IRegistry, sinks contract.SinkResolver,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		Log:         log,
		Events:      events,
		registry:    registry,
		sinks:       sinks,
		sinkTimeout: sinkTimeout,
	}
}

// Add registers sinks that receive every event regardless of target
// (stats, logs, UI).
func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.permanentSinks = append(w.permanentSinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.Events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout computes the target users via the registry, resolves each of
// their connections to a sink, and pushes the event to each one.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.permanentSinks {
		w.consume(ctx, sink, evt)
	}

	var users []string
	switch e := evt.(type) {
	case event.ConversationScoped:
		users = w.registry.GetConversationUsers(e.ConversationID())
	case event.ChannelScoped:
		users = w.registry.GetChannelUsers(e.ChannelID())
	default:
		w.Log.Debug("Event without fan-out target", "event", evt.Name())
		return
	}

	for _, userID := range users {
		for _, connectionID := range w.registry.GetUserConnections(userID) {
			sink, ok := w.sinks.Sink(connectionID)
			if !ok {
				// Connection closed between the registry query and now.
				continue
			}
			w.consume(ctx, sink, evt)
		}
	}
}

func (w *EventFanout) consume(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, evt); err != nil {
		w.Log.Warn("Sink rejected event", "event", evt.Name(), "error", err)
	}
}
