// Package event defines the domain events raised by the Conversation
// and Channel aggregates. Events are immutable facts: they carry the
// aggregate id, the affected user id(s), the actor id and a UTC
// timestamp, and are never replayed to mutate state retroactively.
package event

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}

// ConversationScoped is implemented by every event that targets a
// conversation; the dispatch layer uses it to compute fan-out targets.
type ConversationScoped interface {
	DomainEvent
	ConversationID() uuid.UUID
}

// ChannelScoped is the channel counterpart of ConversationScoped.
type ChannelScoped interface {
	DomainEvent
	ChannelID() uuid.UUID
}

type ConversationCreated struct {
	Conversation uuid.UUID
	Kind         string
	Participants []string
	Title        string
	CreatedBy    string
	At           time.Time
}

func (e ConversationCreated) Name() string              { return "conversation.created" }
func (e ConversationCreated) OccurredAt() time.Time     { return e.At }
func (e ConversationCreated) ConversationID() uuid.UUID { return e.Conversation }

type ConversationParticipantAdded struct {
	Conversation uuid.UUID
	UserID       string
	AddedBy      string
	At           time.Time
}

func (e ConversationParticipantAdded) Name() string              { return "conversation.participant_added" }
func (e ConversationParticipantAdded) OccurredAt() time.Time     { return e.At }
func (e ConversationParticipantAdded) ConversationID() uuid.UUID { return e.Conversation }

type ConversationParticipantRemoved struct {
	Conversation uuid.UUID
	UserID       string
	RemovedBy    string
	At           time.Time
}

func (e ConversationParticipantRemoved) Name() string              { return "conversation.participant_removed" }
func (e ConversationParticipantRemoved) OccurredAt() time.Time     { return e.At }
func (e ConversationParticipantRemoved) ConversationID() uuid.UUID { return e.Conversation }

type ConversationArchived struct {
	Conversation uuid.UUID
	ArchivedBy   string
	At           time.Time
}

func (e ConversationArchived) Name() string              { return "conversation.archived" }
func (e ConversationArchived) OccurredAt() time.Time     { return e.At }
func (e ConversationArchived) ConversationID() uuid.UUID { return e.Conversation }

type ConversationUnarchived struct {
	Conversation uuid.UUID
	UnarchivedBy string
	At           time.Time
}

func (e ConversationUnarchived) Name() string              { return "conversation.unarchived" }
func (e ConversationUnarchived) OccurredAt() time.Time     { return e.At }
func (e ConversationUnarchived) ConversationID() uuid.UUID { return e.Conversation }

type ChannelCreated struct {
	Channel uuid.UUID
	Kind    string
	OwnerID string
	At      time.Time
}

func (e ChannelCreated) Name() string          { return "channel.created" }
func (e ChannelCreated) OccurredAt() time.Time { return e.At }
func (e ChannelCreated) ChannelID() uuid.UUID  { return e.Channel }

type ChannelMemberJoined struct {
	Channel uuid.UUID
	UserID  string
	At      time.Time
}

func (e ChannelMemberJoined) Name() string          { return "channel.member_joined" }
func (e ChannelMemberJoined) OccurredAt() time.Time { return e.At }
func (e ChannelMemberJoined) ChannelID() uuid.UUID  { return e.Channel }

type ChannelMemberLeft struct {
	Channel uuid.UUID
	UserID  string
	At      time.Time
}

func (e ChannelMemberLeft) Name() string          { return "channel.member_left" }
func (e ChannelMemberLeft) OccurredAt() time.Time { return e.At }
func (e ChannelMemberLeft) ChannelID() uuid.UUID  { return e.Channel }

type ChannelModeratorAdded struct {
	Channel uuid.UUID
	UserID  string
	AddedBy string
	At      time.Time
}

func (e ChannelModeratorAdded) Name() string          { return "channel.moderator_added" }
func (e ChannelModeratorAdded) OccurredAt() time.Time { return e.At }
func (e ChannelModeratorAdded) ChannelID() uuid.UUID  { return e.Channel }

type ChannelModeratorRemoved struct {
	Channel   uuid.UUID
	UserID    string
	RemovedBy string
	At        time.Time
}

func (e ChannelModeratorRemoved) Name() string          { return "channel.moderator_removed" }
func (e ChannelModeratorRemoved) OccurredAt() time.Time { return e.At }
func (e ChannelModeratorRemoved) ChannelID() uuid.UUID  { return e.Channel }

type ChannelInfoUpdated struct {
	Channel   uuid.UUID
	NewName   string
	UpdatedBy string
	At        time.Time
}

func (e ChannelInfoUpdated) Name() string          { return "channel.info_updated" }
func (e ChannelInfoUpdated) OccurredAt() time.Time { return e.At }
func (e ChannelInfoUpdated) ChannelID() uuid.UUID  { return e.Channel }

type ChannelArchived struct {
	Channel    uuid.UUID
	ArchivedBy string
	At         time.Time
}

func (e ChannelArchived) Name() string          { return "channel.archived" }
func (e ChannelArchived) OccurredAt() time.Time { return e.At }
func (e ChannelArchived) ChannelID() uuid.UUID  { return e.Channel }
