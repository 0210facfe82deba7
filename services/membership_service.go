//go:generate go run go.uber.org/mock/mockgen -source=membership_service.go -destination=../mocks/mock_membership_service.go -package=mocks
package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/contract"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/errors"
	"github.com/google/uuid"
)

type IMembershipService interface {
	CreateDirectConversation(userA, userB, createdBy string) (*domain.Conversation, error)
	CreateGroupConversation(title string, participantIDs []string, createdBy string) (*domain.Conversation, error)
	AddParticipant(conversationID uuid.UUID, participantID, addedBy string) error
	RemoveParticipant(conversationID uuid.UUID, participantID, removedBy string) error
	ArchiveConversation(conversationID uuid.UUID, archivedBy string) error
	UnarchiveConversation(conversationID uuid.UUID, unarchivedBy string) error
	TouchConversation(conversationID uuid.UUID, ts time.Time)

	CreateChannel(name string, kind domain.ChannelType, ownerID, description string) (*domain.Channel, error)
	JoinChannel(channelID uuid.UUID, userID string) error
	LeaveChannel(channelID uuid.UUID, userID string) error
	AddModerator(channelID uuid.UUID, userID, addedBy string) error
	RemoveModerator(channelID uuid.UUID, userID, removedBy string) error
	UpdateChannelInfo(channelID uuid.UUID, newName, newDescription, updatedBy string) error
	ArchiveChannel(channelID uuid.UUID, archivedBy string) error

	SubscribeConversation(connectionID string, conversationID uuid.UUID) error
	UnsubscribeConversation(connectionID string, conversationID uuid.UUID)
	SubscribeChannel(connectionID string, channelID uuid.UUID) error
	UnsubscribeChannel(connectionID string, channelID uuid.UUID)
}

// MembershipService is the command-handler layer in front of the
// aggregates. It runs the business operation, drains the aggregate
// outbox into the event channel, and drives the presence registry once
// a subscribe intent has been authorized against the aggregate.
//
// Aggregates are not safe for concurrent use; the service serializes
// access to them. The registry needs no such protection.
type MembershipService struct {
	mu            sync.RWMutex
	log           *slog.Logger
	registry      contract.IRegistry
	events        chan<- event.DomainEvent
	conversations map[uuid.UUID]*domain.Conversation
	channels      map[uuid.UUID]*domain.Channel
}

func NewMembershipService(log *slog.Logger, registry contract.IRegistry,
	events chan<- event.DomainEvent) *MembershipService {
	return &MembershipService{
		log:           log,
		registry:      registry,
		events:        events,
		conversations: make(map[uuid.UUID]*domain.Conversation),
		channels:      make(map[uuid.UUID]*domain.Channel),
	}
}

func (s *MembershipService) CreateDirectConversation(userA, userB, createdBy string) (*domain.Conversation, error) {
	conversation, err := domain.NewDirectConversation(userA, userB, createdBy)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.conversations[conversation.ID()] = conversation
	s.mu.Unlock()

	s.publish(conversation.FlushEvents())
	return conversation, nil
}

func (s *MembershipService) CreateGroupConversation(title string, participantIDs []string, createdBy string) (*domain.Conversation, error) {
	conversation, err := domain.NewGroupConversation(title, participantIDs, createdBy)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.conversations[conversation.ID()] = conversation
	s.mu.Unlock()

	s.publish(conversation.FlushEvents())
	return conversation, nil
}

func (s *MembershipService) AddParticipant(conversationID uuid.UUID, participantID, addedBy string) error {
	return s.withConversation(conversationID, func(c *domain.Conversation) error {
		return c.AddParticipant(participantID, addedBy)
	})
}

// RemoveParticipant removes a participant (or lets one leave) and then
// evicts their presence in the conversation, so fan-out never targets a
// user who is no longer allowed to receive events.
func (s *MembershipService) RemoveParticipant(conversationID uuid.UUID, participantID, removedBy string) error {
	err := s.withConversation(conversationID, func(c *domain.Conversation) error {
		return c.RemoveParticipant(participantID, removedBy)
	})
	if err != nil {
		return err
	}

	if conns := s.registry.GetUserConnections(participantID); len(conns) > 0 {
		// Leave is user-granularity: any one connection clears the
		// user's presence in this conversation for all devices.
		s.registry.LeaveConversation(conns[0], conversationID)
	}
	return nil
}

func (s *MembershipService) ArchiveConversation(conversationID uuid.UUID, archivedBy string) error {
	return s.withConversation(conversationID, func(c *domain.Conversation) error {
		return c.Archive(archivedBy)
	})
}

func (s *MembershipService) UnarchiveConversation(conversationID uuid.UUID, unarchivedBy string) error {
	return s.withConversation(conversationID, func(c *domain.Conversation) error {
		return c.Unarchive(unarchivedBy)
	})
}

// TouchConversation is called by the external message pipeline after a
// message is persisted. Advisory only; unknown ids are ignored.
func (s *MembershipService) TouchConversation(conversationID uuid.UUID, ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conversation, ok := s.conversations[conversationID]; ok {
		conversation.UpdateLastMessageTime(ts)
	}
}

func (s *MembershipService) CreateChannel(name string, kind domain.ChannelType, ownerID, description string) (*domain.Channel, error) {
	channel, err := domain.NewChannel(name, kind, ownerID, description)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.channels[channel.ID()] = channel
	s.mu.Unlock()

	s.publish(channel.FlushEvents())
	return channel, nil
}

func (s *MembershipService) JoinChannel(channelID uuid.UUID, userID string) error {
	return s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.Join(userID)
	})
}

// LeaveChannel removes the member and evicts their channel presence,
// mirroring RemoveParticipant.
func (s *MembershipService) LeaveChannel(channelID uuid.UUID, userID string) error {
	err := s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.Leave(userID)
	})
	if err != nil {
		return err
	}

	if conns := s.registry.GetUserConnections(userID); len(conns) > 0 {
		s.registry.LeaveChannel(conns[0], channelID)
	}
	return nil
}

func (s *MembershipService) AddModerator(channelID uuid.UUID, userID, addedBy string) error {
	return s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.AddModerator(userID, addedBy)
	})
}

func (s *MembershipService) RemoveModerator(channelID uuid.UUID, userID, removedBy string) error {
	return s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.RemoveModerator(userID, removedBy)
	})
}

func (s *MembershipService) UpdateChannelInfo(channelID uuid.UUID, newName, newDescription, updatedBy string) error {
	return s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.UpdateInfo(newName, newDescription, updatedBy)
	})
}

func (s *MembershipService) ArchiveChannel(channelID uuid.UUID, archivedBy string) error {
	return s.withChannel(channelID, func(ch *domain.Channel) error {
		return ch.Archive(archivedBy)
	})
}

// SubscribeConversation authorizes the subscribe intent against the
// aggregate before touching the registry: only participants may be
// present in a conversation.
func (s *MembershipService) SubscribeConversation(connectionID string, conversationID uuid.UUID) error {
	userID, ok := s.registry.GetUserID(connectionID)
	if !ok {
		return errors.ErrUnknownConnection
	}

	s.mu.RLock()
	conversation, exists := s.conversations[conversationID]
	s.mu.RUnlock()
	if !exists {
		return errors.ErrConversationNotFound
	}
	if !conversation.IsParticipant(userID) {
		return errors.ErrNotParticipant
	}

	s.registry.JoinConversation(connectionID, conversationID)
	return nil
}

// UnsubscribeConversation never fails: a stale or duplicate signal from
// a flaky transport degrades to a no-op.
func (s *MembershipService) UnsubscribeConversation(connectionID string, conversationID uuid.UUID) {
	s.registry.LeaveConversation(connectionID, conversationID)
}

func (s *MembershipService) SubscribeChannel(connectionID string, channelID uuid.UUID) error {
	userID, ok := s.registry.GetUserID(connectionID)
	if !ok {
		return errors.ErrUnknownConnection
	}

	s.mu.RLock()
	channel, exists := s.channels[channelID]
	s.mu.RUnlock()
	if !exists {
		return errors.ErrChannelNotFound
	}
	if !channel.IsMember(userID) {
		return errors.ErrNotMember
	}

	s.registry.JoinChannel(connectionID, channelID)
	return nil
}

func (s *MembershipService) UnsubscribeChannel(connectionID string, channelID uuid.UUID) {
	s.registry.LeaveChannel(connectionID, channelID)
}

func (s *MembershipService) withConversation(conversationID uuid.UUID, op func(*domain.Conversation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[conversationID]
	if !ok {
		return errors.ErrConversationNotFound
	}
	if err := op(conversation); err != nil {
		return err
	}
	s.publish(conversation.FlushEvents())
	return nil
}

func (s *MembershipService) withChannel(channelID uuid.UUID, op func(*domain.Channel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	channel, ok := s.channels[channelID]
	if !ok {
		return errors.ErrChannelNotFound
	}
	if err := op(channel); err != nil {
		return err
	}
	s.publish(channel.FlushEvents())
	return nil
}

// publish hands flushed events to the dispatch pipeline. The channel is
// buffered; when it is full the event is dropped with a warning rather
// than blocking a command handler.
func (s *MembershipService) publish(events []event.DomainEvent) {
	for _, evt := range events {
		select {
		case s.events <- evt:
		default:
			s.log.Warn("Event channel full, dropping event", "event", evt.Name())
		}
	}
}
