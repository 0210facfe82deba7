package domain

import (
	"strings"
	"testing"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewChannel_Success(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "everything else")

	req.NoError(err)
	req.Equal("general", channel.Name())
	req.Equal(ChannelPublic, channel.Kind())
	req.Equal(owner, channel.OwnerID())

	// The owner is implicitly a member and a moderator
	req.True(channel.IsMember(owner))
	req.True(channel.IsModerator(owner))
	req.True(channel.IsOwner(owner))
	req.False(channel.IsArchived())
	req.True(channel.ArchivedAt().IsZero())

	events := channel.FlushEvents()
	req.Len(events, 1)
	created, ok := events[0].(event.ChannelCreated)
	req.True(ok)
	req.Equal(channel.ID(), created.Channel)
	req.Equal(owner, created.OwnerID)
}

func TestNewChannel_Validation(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()

	_, err := NewChannel("", ChannelPublic, owner, "")
	req.ErrorIs(err, errors.ErrInvalidName)

	_, err = NewChannel("ab", ChannelPublic, owner, "")
	req.ErrorIs(err, errors.ErrNameTooShort)

	_, err = NewChannel(strings.Repeat("x", 101), ChannelPublic, owner, "")
	req.ErrorIs(err, errors.ErrNameTooLong)

	_, err = NewChannel("general", ChannelPublic, "", "")
	req.ErrorIs(err, errors.ErrInvalidOwner)

	_, err = NewChannel("general", ChannelPublic, owner, strings.Repeat("x", 501))
	req.ErrorIs(err, errors.ErrDescriptionTooLong)

	// Limits count runes, not bytes
	_, err = NewChannel("éé", ChannelPublic, owner, "")
	req.ErrorIs(err, errors.ErrNameTooShort)

	_, err = NewChannel(strings.Repeat("é", 100), ChannelPublic, owner, strings.Repeat("é", 500))
	req.NoError(err)
}

func TestChannel_JoinAndLeave(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()
	member := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "")
	req.NoError(err)
	channel.FlushEvents()

	req.ErrorIs(channel.Join(""), errors.ErrInvalidUser)

	// When a user joins
	req.NoError(channel.Join(member))
	req.True(channel.IsMember(member))
	req.ErrorIs(channel.Join(member), errors.ErrAlreadyMember)

	// The owner can never leave without an ownership transfer
	req.ErrorIs(channel.Leave(owner), errors.ErrOwnerCannotLeave)
	req.ErrorIs(channel.Leave(uuid.NewString()), errors.ErrNotMember)

	// When the member leaves
	req.NoError(channel.Leave(member))
	req.False(channel.IsMember(member))

	events := channel.FlushEvents()
	req.Len(events, 2)
	_, joined := events[0].(event.ChannelMemberJoined)
	req.True(joined)
	_, left := events[1].(event.ChannelMemberLeft)
	req.True(left)
}

func TestChannel_LeaveRevokesModerator(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()
	moderator := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "")
	req.NoError(err)

	req.NoError(channel.Join(moderator))
	req.NoError(channel.AddModerator(moderator, owner))
	req.True(channel.IsModerator(moderator))

	// When the moderator leaves, moderator status goes silently with it
	req.NoError(channel.Leave(moderator))
	req.False(channel.IsMember(moderator))
	req.False(channel.IsModerator(moderator))
}

func TestChannel_ModeratorManagement(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()
	member := uuid.NewString()
	outsider := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "")
	req.NoError(err)
	req.NoError(channel.Join(member))
	channel.FlushEvents()

	// Only the owner manages moderators
	req.ErrorIs(channel.AddModerator(member, member), errors.ErrNotOwner)

	// A user must be a member before becoming a moderator
	req.ErrorIs(channel.AddModerator(outsider, owner), errors.ErrNotMember)

	req.NoError(channel.AddModerator(member, owner))
	req.ErrorIs(channel.AddModerator(member, owner), errors.ErrAlreadyModerator)

	// The owner can never be demoted, not even by themselves
	req.ErrorIs(channel.RemoveModerator(owner, owner), errors.ErrCannotRemoveOwner)

	req.ErrorIs(channel.RemoveModerator(member, member), errors.ErrNotOwner)
	req.NoError(channel.RemoveModerator(member, owner))
	req.False(channel.IsModerator(member))
	req.ErrorIs(channel.RemoveModerator(member, owner), errors.ErrNotModerator)

	// Owner stayed member and moderator throughout
	req.True(channel.IsMember(owner))
	req.True(channel.IsModerator(owner))
}

func TestChannel_UpdateInfo(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()
	member := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "old")
	req.NoError(err)
	req.NoError(channel.Join(member))
	channel.FlushEvents()

	// Moderators only
	req.ErrorIs(channel.UpdateInfo("renamed", "new", member), errors.ErrNotModerator)

	// Same validation as creation
	req.ErrorIs(channel.UpdateInfo("ab", "new", owner), errors.ErrNameTooShort)
	req.ErrorIs(channel.UpdateInfo("renamed", strings.Repeat("x", 501), owner), errors.ErrDescriptionTooLong)

	req.NoError(channel.UpdateInfo("  renamed  ", "new", owner))
	req.Equal("renamed", channel.Name())
	req.Equal("new", channel.Description())

	events := channel.FlushEvents()
	req.Len(events, 1)
	updated, ok := events[0].(event.ChannelInfoUpdated)
	req.True(ok)
	req.Equal("renamed", updated.NewName)
}

func TestChannel_Archive(t *testing.T) {
	req := require.New(t)
	owner := uuid.NewString()
	member := uuid.NewString()

	channel, err := NewChannel("general", ChannelPublic, owner, "")
	req.NoError(err)
	req.NoError(channel.Join(member))
	channel.FlushEvents()

	req.ErrorIs(channel.Archive(member), errors.ErrNotModerator)

	req.NoError(channel.Archive(owner))
	req.True(channel.IsArchived())
	req.False(channel.ArchivedAt().IsZero())

	// Idempotent-guarded
	req.ErrorIs(channel.Archive(owner), errors.ErrAlreadyArchived)

	// Archival is terminal: self-service and info mutations stop
	req.ErrorIs(channel.Join(uuid.NewString()), errors.ErrChannelArchived)
	req.ErrorIs(channel.Leave(member), errors.ErrChannelArchived)
	req.ErrorIs(channel.UpdateInfo("renamed", "", owner), errors.ErrChannelArchived)
}
