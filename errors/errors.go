// Package errors defines the typed business failures returned by the
// Conversation and Channel aggregates. Each rule violation maps to one
// sentinel carrying a stable code and a human-readable message, so
// command handlers can surface it to the end user without further
// interpretation.
package errors

import "fmt"

// Code identifies a business rule violation independently of the
// message wording.
type Code string

// DomainError is a terminal business decision, not a transient fault.
// Callers match it with errors.Is against the sentinels below.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErr(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Conversation failures.
var (
	ErrInvalidUser              = domainErr("invalid_user", "user id must not be empty")
	ErrSameUsers                = domainErr("same_users", "a direct conversation requires two distinct users")
	ErrCreatorNotParticipant    = domainErr("creator_not_participant", "creator must be one of the participants")
	ErrMissingTitle             = domainErr("missing_title", "a group conversation requires a title")
	ErrTitleTooShort            = domainErr("title_too_short", "title must be at least 3 characters")
	ErrTitleTooLong             = domainErr("title_too_long", "title must be at most 100 characters")
	ErrInsufficientParticipants = domainErr("insufficient_participants", "a group conversation requires at least 2 participants")
	ErrInvalidParticipant       = domainErr("invalid_participant", "participant id must not be empty")
	ErrDuplicateParticipants    = domainErr("duplicate_participants", "participant ids must be unique")
	ErrNotGroupChat             = domainErr("not_group_chat", "participants of a direct conversation cannot change")
	ErrConversationArchived     = domainErr("conversation_archived", "conversation is archived")
	ErrNotParticipant           = domainErr("not_participant", "actor is not a participant of this conversation")
	ErrAlreadyParticipant       = domainErr("already_participant", "user is already a participant")
	ErrNotAParticipant          = domainErr("not_a_participant", "user is not a participant of this conversation")
	ErrMinimumParticipants      = domainErr("minimum_participants", "a group conversation keeps at least 2 participants")
	ErrAlreadyArchived          = domainErr("already_archived", "already archived")
	ErrNotArchived              = domainErr("not_archived", "not archived")
)

// Channel failures.
var (
	ErrInvalidName        = domainErr("invalid_name", "channel name must not be empty")
	ErrNameTooShort       = domainErr("name_too_short", "channel name must be at least 3 characters")
	ErrNameTooLong        = domainErr("name_too_long", "channel name must be at most 100 characters")
	ErrInvalidOwner       = domainErr("invalid_owner", "owner id must not be empty")
	ErrDescriptionTooLong = domainErr("description_too_long", "description must be at most 500 characters")
	ErrChannelArchived    = domainErr("channel_archived", "channel is archived")
	ErrAlreadyMember      = domainErr("already_member", "user is already a member of this channel")
	ErrOwnerCannotLeave   = domainErr("owner_cannot_leave", "the owner cannot leave without transferring ownership")
	ErrNotMember          = domainErr("not_member", "user is not a member of this channel")
	ErrNotOwner           = domainErr("not_owner", "only the owner may manage moderators")
	ErrAlreadyModerator   = domainErr("already_moderator", "user is already a moderator")
	ErrNotModerator       = domainErr("not_moderator", "user is not a moderator of this channel")
	ErrCannotRemoveOwner  = domainErr("cannot_remove_owner", "the owner cannot be removed")
)

// Runtime failures.
var ErrWorkerPanic = fmt.Errorf("worker panic")

// Command-handler failures.
var (
	ErrConversationNotFound = domainErr("conversation_not_found", "conversation does not exist")
	ErrChannelNotFound      = domainErr("channel_not_found", "channel does not exist")
	ErrUnknownConnection    = domainErr("unknown_connection", "connection is not registered")
)
