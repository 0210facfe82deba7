//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives a domain event. A sink must honor ctx: the fan-out
// worker bounds each delivery with a timeout.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry is the presence registry consumed by the dispatch layer.
// Every operation is total over its input space: unknown ids yield
// empty results or no-ops, never errors. Implementations must be safe
// for concurrent use without serializing unrelated connections.
type IRegistry interface {
	AddConnection(userID, connectionID string)
	RemoveConnection(connectionID string)

	JoinConversation(connectionID string, conversationID uuid.UUID)
	LeaveConversation(connectionID string, conversationID uuid.UUID)
	JoinChannel(connectionID string, channelID uuid.UUID)
	LeaveChannel(connectionID string, channelID uuid.UUID)

	GetUserID(connectionID string) (string, bool)
	GetUserConnections(userID string) []string
	GetConversationUsers(conversationID uuid.UUID) []string
	GetChannelUsers(channelID uuid.UUID) []string
	GetUserConversations(userID string) []uuid.UUID
	GetUserChannels(userID string) []uuid.UUID
	IsUserOnline(userID string) bool
}

// SinkResolver maps a live connection id to its transport sink. The
// gateway owns the mapping; the registry only tracks ids.
type SinkResolver interface {
	Sink(connectionID string) (EventSink, bool)
}
