package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/mocks"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_ConversationEvent(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockResolver := mocks.NewMockSinkResolver(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	conversation := uuid.New()
	userA := uuid.NewString()
	userB := uuid.NewString()

	// Given two present users, one with two devices
	mockRegistry.EXPECT().GetConversationUsers(conversation).
		Return([]string{userA, userB}).Times(1)
	mockRegistry.EXPECT().GetUserConnections(userA).
		Return([]string{"conn-a1", "conn-a2"}).Times(1)
	mockRegistry.EXPECT().GetUserConnections(userB).
		Return([]string{"conn-b1"}).Times(1)
	mockResolver.EXPECT().Sink(gomock.Any()).
		Return(mockSink, true).Times(3)

	// Then every live connection of every present user is pushed to
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(nil).Times(3)

	fanout := NewEventFanout(log, nil, mockRegistry, mockResolver, time.Second)
	evt := event.ConversationParticipantAdded{Conversation: conversation, At: time.Now().UTC()}

	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_DeadConnectionSkipped(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockResolver := mocks.NewMockSinkResolver(ctrl)

	channel := uuid.New()
	user := uuid.NewString()

	mockRegistry.EXPECT().GetChannelUsers(channel).Return([]string{user}).Times(1)
	mockRegistry.EXPECT().GetUserConnections(user).Return([]string{"gone"}).Times(1)

	// The connection closed between the registry query and delivery
	mockResolver.EXPECT().Sink("gone").Return(nil, false).Times(1)

	fanout := NewEventFanout(log, nil, mockRegistry, mockResolver, time.Second)
	fanout.Fanout(context.Background(), event.ChannelMemberJoined{Channel: channel, UserID: user})
}

func TestEventFanout_PermanentSinksSeeEveryEvent(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockResolver := mocks.NewMockSinkResolver(ctrl)
	permanentSink := mocks.NewMockEventSink(ctrl)

	conversation := uuid.New()
	mockRegistry.EXPECT().GetConversationUsers(conversation).Return(nil).Times(1)
	permanentSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	fanout := NewEventFanout(log, nil, mockRegistry, mockResolver, time.Second).
		Add(permanentSink)
	fanout.Fanout(context.Background(), event.ConversationArchived{Conversation: conversation})
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockResolver := mocks.NewMockSinkResolver(ctrl)
	slowSink := mocks.NewMockEventSink(ctrl)

	channel := uuid.New()
	user := uuid.NewString()
	sinkTimeout := 20 * time.Millisecond

	mockRegistry.EXPECT().GetChannelUsers(channel).Return([]string{user}).Times(1)
	mockRegistry.EXPECT().GetUserConnections(user).Return([]string{"conn"}).Times(1)
	mockResolver.EXPECT().Sink("conn").Return(slowSink, true).Times(1)

	// Given a sink that only returns once its context is canceled
	slowSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			<-ctx.Done() // Waiting for timeout to trigger cancellation
			return ctx.Err()
		}).Times(1)

	fanout := NewEventFanout(log, nil, mockRegistry, mockResolver, sinkTimeout)

	start := time.Now()
	fanout.Fanout(context.Background(), event.ChannelArchived{Channel: channel})

	// Then the dispatch path was released by the timeout, not the sink
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_RunStopsOnContextDone(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockResolver := mocks.NewMockSinkResolver(ctrl)

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(log, events, mockRegistry, mockResolver, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = fanout.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Fanout worker did not stop on context cancellation")
	}
}
