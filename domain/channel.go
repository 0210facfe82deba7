package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/errors"
	"github.com/google/uuid"
)

type ChannelType string

const (
	ChannelPublic  ChannelType = "public"
	ChannelPrivate ChannelType = "private"
)

const (
	minChannelNameLength = 3
	maxChannelNameLength = 100
	maxDescriptionLength = 500
)

// Channel models a discoverable room with an owner, a moderator set and
// a member set. The owner is a member and a moderator from creation
// until archival, and can never be stripped of either role.
type Channel struct {
	id          uuid.UUID
	name        string
	description string
	kind        ChannelType
	ownerID     string
	members     map[string]struct{}
	moderators  map[string]struct{}
	createdAt   time.Time
	archived    bool
	archivedAt  time.Time
	outbox      []event.DomainEvent
}

func NewChannel(name string, kind ChannelType, ownerID, description string) (*Channel, error) {
	name = strings.TrimSpace(name)
	if err := validateChannelName(name); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, errors.ErrInvalidOwner
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, errors.ErrDescriptionTooLong
	}

	ch := &Channel{
		id:          uuid.New(),
		name:        name,
		description: description,
		kind:        kind,
		ownerID:     ownerID,
		members:     map[string]struct{}{ownerID: {}},
		moderators:  map[string]struct{}{ownerID: {}},
		createdAt:   time.Now().UTC(),
	}
	ch.record(event.ChannelCreated{
		Channel: ch.id,
		Kind:    string(kind),
		OwnerID: ownerID,
		At:      ch.createdAt,
	})
	return ch, nil
}

// Join is self-service membership.
func (ch *Channel) Join(userID string) error {
	if userID == "" {
		return errors.ErrInvalidUser
	}
	if ch.archived {
		return errors.ErrChannelArchived
	}
	if ch.IsMember(userID) {
		return errors.ErrAlreadyMember
	}

	ch.members[userID] = struct{}{}
	ch.record(event.ChannelMemberJoined{Channel: ch.id, UserID: userID, At: time.Now().UTC()})
	return nil
}

// Leave removes the member; a leaving moderator loses moderator status
// silently. The owner must transfer ownership first, which is outside
// this core, so the owner can never leave.
func (ch *Channel) Leave(userID string) error {
	if userID == "" {
		return errors.ErrInvalidUser
	}
	if ch.archived {
		return errors.ErrChannelArchived
	}
	if userID == ch.ownerID {
		return errors.ErrOwnerCannotLeave
	}
	if !ch.IsMember(userID) {
		return errors.ErrNotMember
	}

	delete(ch.members, userID)
	delete(ch.moderators, userID)
	ch.record(event.ChannelMemberLeft{Channel: ch.id, UserID: userID, At: time.Now().UTC()})
	return nil
}

// AddModerator promotes an existing member. Owner-only.
func (ch *Channel) AddModerator(userID, addedBy string) error {
	if addedBy != ch.ownerID {
		return errors.ErrNotOwner
	}
	if !ch.IsMember(userID) {
		return errors.ErrNotMember
	}
	if ch.IsModerator(userID) {
		return errors.ErrAlreadyModerator
	}

	ch.moderators[userID] = struct{}{}
	ch.record(event.ChannelModeratorAdded{Channel: ch.id, UserID: userID, AddedBy: addedBy, At: time.Now().UTC()})
	return nil
}

// RemoveModerator demotes a moderator. Owner-only, and the owner can
// never be demoted.
func (ch *Channel) RemoveModerator(userID, removedBy string) error {
	if removedBy != ch.ownerID {
		return errors.ErrNotOwner
	}
	if userID == ch.ownerID {
		return errors.ErrCannotRemoveOwner
	}
	if !ch.IsModerator(userID) {
		return errors.ErrNotModerator
	}

	delete(ch.moderators, userID)
	ch.record(event.ChannelModeratorRemoved{Channel: ch.id, UserID: userID, RemovedBy: removedBy, At: time.Now().UTC()})
	return nil
}

// UpdateInfo renames the channel and replaces its description, with the
// same validation as creation. Moderators only, blocked while archived.
func (ch *Channel) UpdateInfo(newName, newDescription, updatedBy string) error {
	if ch.archived {
		return errors.ErrChannelArchived
	}
	if !ch.IsModerator(updatedBy) {
		return errors.ErrNotModerator
	}
	newName = strings.TrimSpace(newName)
	if err := validateChannelName(newName); err != nil {
		return err
	}
	if utf8.RuneCountInString(newDescription) > maxDescriptionLength {
		return errors.ErrDescriptionTooLong
	}

	ch.name = newName
	ch.description = newDescription
	ch.record(event.ChannelInfoUpdated{Channel: ch.id, NewName: newName, UpdatedBy: updatedBy, At: time.Now().UTC()})
	return nil
}

// Archive is idempotent-guarded and moderator-only. Archival is the
// terminal state; there is no physical deletion.
func (ch *Channel) Archive(archivedBy string) error {
	if !ch.IsModerator(archivedBy) {
		return errors.ErrNotModerator
	}
	if ch.archived {
		return errors.ErrAlreadyArchived
	}

	ch.archived = true
	ch.archivedAt = time.Now().UTC()
	ch.record(event.ChannelArchived{Channel: ch.id, ArchivedBy: archivedBy, At: ch.archivedAt})
	return nil
}

func (ch *Channel) ID() uuid.UUID        { return ch.id }
func (ch *Channel) Name() string         { return ch.name }
func (ch *Channel) Description() string  { return ch.description }
func (ch *Channel) Kind() ChannelType    { return ch.kind }
func (ch *Channel) OwnerID() string      { return ch.ownerID }
func (ch *Channel) CreatedAt() time.Time { return ch.createdAt }
func (ch *Channel) IsArchived() bool     { return ch.archived }

// ArchivedAt is the zero time while the channel is live.
func (ch *Channel) ArchivedAt() time.Time { return ch.archivedAt }

func (ch *Channel) IsMember(userID string) bool {
	_, ok := ch.members[userID]
	return ok
}

func (ch *Channel) IsModerator(userID string) bool {
	_, ok := ch.moderators[userID]
	return ok
}

func (ch *Channel) IsOwner(userID string) bool { return userID == ch.ownerID }

// Members returns a copy; order is not significant.
func (ch *Channel) Members() []string {
	ids := make([]string, 0, len(ch.members))
	for id := range ch.members {
		ids = append(ids, id)
	}
	return ids
}

// Moderators returns a copy; order is not significant.
func (ch *Channel) Moderators() []string {
	ids := make([]string, 0, len(ch.moderators))
	for id := range ch.moderators {
		ids = append(ids, id)
	}
	return ids
}

// FlushEvents drains the outbox.
func (ch *Channel) FlushEvents() []event.DomainEvent {
	events := ch.outbox
	ch.outbox = nil
	return events
}

func (ch *Channel) record(e event.DomainEvent) {
	ch.outbox = append(ch.outbox, e)
}

// validateChannelName counts runes, not bytes, so non-ASCII names are
// measured the way users read them.
func validateChannelName(name string) error {
	if name == "" {
		return errors.ErrInvalidName
	}
	if utf8.RuneCountInString(name) < minChannelNameLength {
		return errors.ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > maxChannelNameLength {
		return errors.ErrNameTooLong
	}
	return nil
}
