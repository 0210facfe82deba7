// Package domain contains the membership aggregates of the chat core.
// Conversations and channels enforce their own invariants and record
// domain events in an outbox; no runtime, network, or storage logic
// should be added here.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/errors"
	"github.com/google/uuid"
)

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

const (
	minGroupParticipants = 2
	minTitleLength       = 3
	maxTitleLength       = 100
)

// Conversation models a direct (exactly 2 participants, never mutated)
// or group (>= 2 participants) chat. Direct conversations reject every
// participant mutation; groups may grow and shrink down to a floor of 2.
type Conversation struct {
	id            uuid.UUID
	kind          ConversationType
	title         string
	participants  map[string]struct{}
	createdBy     string
	createdAt     time.Time
	archived      bool
	lastMessageAt time.Time
	outbox        []event.DomainEvent
}

// NewDirectConversation creates a 2-party conversation. The participant
// pair is immutable for the lifetime of the aggregate.
func NewDirectConversation(userA, userB, createdBy string) (*Conversation, error) {
	if userA == "" || userB == "" {
		return nil, errors.ErrInvalidUser
	}
	if userA == userB {
		return nil, errors.ErrSameUsers
	}
	if createdBy != userA && createdBy != userB {
		return nil, errors.ErrCreatorNotParticipant
	}

	c := &Conversation{
		id:        uuid.New(),
		kind:      ConversationDirect,
		createdBy: createdBy,
		createdAt: time.Now().UTC(),
		participants: map[string]struct{}{
			userA: {},
			userB: {},
		},
	}
	c.record(event.ConversationCreated{
		Conversation: c.id,
		Kind:         string(c.kind),
		Participants: c.Participants(),
		CreatedBy:    createdBy,
		At:           c.createdAt,
	})
	return c, nil
}

// NewGroupConversation creates a titled conversation with two or more
// distinct participants, one of which must be the creator.
func NewGroupConversation(title string, participantIDs []string, createdBy string) (*Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.ErrMissingTitle
	}
	// Length limits count runes, not bytes, so non-ASCII titles are
	// measured the way users read them.
	if utf8.RuneCountInString(title) < minTitleLength {
		return nil, errors.ErrTitleTooShort
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, errors.ErrTitleTooLong
	}
	if len(participantIDs) < minGroupParticipants {
		return nil, errors.ErrInsufficientParticipants
	}

	participants := make(map[string]struct{}, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			return nil, errors.ErrInvalidParticipant
		}
		if _, ok := participants[id]; ok {
			return nil, errors.ErrDuplicateParticipants
		}
		participants[id] = struct{}{}
	}
	if _, ok := participants[createdBy]; !ok {
		return nil, errors.ErrCreatorNotParticipant
	}

	c := &Conversation{
		id:           uuid.New(),
		kind:         ConversationGroup,
		title:        title,
		participants: participants,
		createdBy:    createdBy,
		createdAt:    time.Now().UTC(),
	}
	c.record(event.ConversationCreated{
		Conversation: c.id,
		Kind:         string(c.kind),
		Participants: c.Participants(),
		Title:        title,
		CreatedBy:    createdBy,
		At:           c.createdAt,
	})
	return c, nil
}

// AddParticipant grows a group conversation. The actor must already be
// a participant.
func (c *Conversation) AddParticipant(participantID, addedBy string) error {
	if c.kind == ConversationDirect {
		return errors.ErrNotGroupChat
	}
	if c.archived {
		return errors.ErrConversationArchived
	}
	if !c.IsParticipant(addedBy) {
		return errors.ErrNotParticipant
	}
	if c.IsParticipant(participantID) {
		return errors.ErrAlreadyParticipant
	}

	c.participants[participantID] = struct{}{}
	c.record(event.ConversationParticipantAdded{
		Conversation: c.id,
		UserID:       participantID,
		AddedBy:      addedBy,
		At:           time.Now().UTC(),
	})
	return nil
}

// RemoveParticipant shrinks a group conversation, never below 2
// participants. Self-removal (removedBy == participantID) is the
// "leave" path and is allowed.
func (c *Conversation) RemoveParticipant(participantID, removedBy string) error {
	if c.kind == ConversationDirect {
		return errors.ErrNotGroupChat
	}
	if c.archived {
		return errors.ErrConversationArchived
	}
	if !c.IsParticipant(removedBy) {
		return errors.ErrNotParticipant
	}
	if !c.IsParticipant(participantID) {
		return errors.ErrNotAParticipant
	}
	if len(c.participants) <= minGroupParticipants {
		return errors.ErrMinimumParticipants
	}

	delete(c.participants, participantID)
	c.record(event.ConversationParticipantRemoved{
		Conversation: c.id,
		UserID:       participantID,
		RemovedBy:    removedBy,
		At:           time.Now().UTC(),
	})
	return nil
}

// Archive is the terminal observable state of a conversation; nothing
// is ever physically deleted in this core.
func (c *Conversation) Archive(archivedBy string) error {
	if !c.IsParticipant(archivedBy) {
		return errors.ErrNotParticipant
	}
	if c.archived {
		return errors.ErrAlreadyArchived
	}

	c.archived = true
	c.record(event.ConversationArchived{
		Conversation: c.id,
		ArchivedBy:   archivedBy,
		At:           time.Now().UTC(),
	})
	return nil
}

func (c *Conversation) Unarchive(unarchivedBy string) error {
	if !c.IsParticipant(unarchivedBy) {
		return errors.ErrNotParticipant
	}
	if !c.archived {
		return errors.ErrNotArchived
	}

	c.archived = false
	c.record(event.ConversationUnarchived{
		Conversation: c.id,
		UnarchivedBy: unarchivedBy,
		At:           time.Now().UTC(),
	})
	return nil
}

// UpdateLastMessageTime is an advisory setter driven by the external
// message pipeline. No gating, no event.
func (c *Conversation) UpdateLastMessageTime(ts time.Time) {
	c.lastMessageAt = ts
}

func (c *Conversation) ID() uuid.UUID            { return c.id }
func (c *Conversation) Kind() ConversationType   { return c.kind }
func (c *Conversation) Title() string            { return c.title }
func (c *Conversation) CreatedBy() string        { return c.createdBy }
func (c *Conversation) CreatedAt() time.Time     { return c.createdAt }
func (c *Conversation) IsArchived() bool         { return c.archived }
func (c *Conversation) LastMessageAt() time.Time { return c.lastMessageAt }

func (c *Conversation) IsParticipant(userID string) bool {
	_, ok := c.participants[userID]
	return ok
}

// Participants returns a copy; order is not significant.
func (c *Conversation) Participants() []string {
	ids := make([]string, 0, len(c.participants))
	for id := range c.participants {
		ids = append(ids, id)
	}
	return ids
}

// FlushEvents drains the outbox. The caller owns publication; the
// aggregate never talks to a transport.
func (c *Conversation) FlushEvents() []event.DomainEvent {
	events := c.outbox
	c.outbox = nil
	return events
}

func (c *Conversation) record(e event.DomainEvent) {
	c.outbox = append(c.outbox, e)
}
